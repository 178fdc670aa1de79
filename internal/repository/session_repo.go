package repository

import (
	"context"
	"errors"

	"github.com/InhotaEverton/Aromas-Caf/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, s *model.CashSession) error
	// FindOpen returns (nil, nil) when no session is OPEN.
	FindOpen(ctx context.Context) (*model.CashSession, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CashSession, error)
	Update(ctx context.Context, s *model.CashSession) error
	ListHistory(ctx context.Context, page, limit int) ([]model.CashSession, int64, error)
	// ListAllWithSales loads every session with its sales embedded, for reporting.
	ListAllWithSales(ctx context.Context) ([]model.CashSession, error)
}

type sessionRepo struct{ db *gorm.DB }

func NewSessionRepository(db *gorm.DB) SessionRepository { return &sessionRepo{db: db} }

func (r *sessionRepo) Create(ctx context.Context, s *model.CashSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *sessionRepo) FindOpen(ctx context.Context) (*model.CashSession, error) {
	var s model.CashSession
	err := r.db.WithContext(ctx).
		Preload("Sales.Items").Preload("Sales.Payments").
		Where("status = ?", model.SessionOpen).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CashSession, error) {
	var s model.CashSession
	err := r.db.WithContext(ctx).
		Preload("Sales.Items").Preload("Sales.Payments").
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *sessionRepo) Update(ctx context.Context, s *model.CashSession) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *sessionRepo) ListHistory(ctx context.Context, page, limit int) ([]model.CashSession, int64, error) {
	var sessions []model.CashSession
	var total int64

	q := r.db.WithContext(ctx).Model(&model.CashSession{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("Sales.Items").Preload("Sales.Payments").
		Order("opened_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&sessions).Error
	return sessions, total, err
}

func (r *sessionRepo) ListAllWithSales(ctx context.Context) ([]model.CashSession, error) {
	var sessions []model.CashSession
	err := r.db.WithContext(ctx).
		Preload("Sales.Items").Preload("Sales.Payments").
		Order("opened_at DESC").
		Find(&sessions).Error
	return sessions, err
}
