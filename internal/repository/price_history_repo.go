package repository

import (
	"context"

	"github.com/InhotaEverton/Aromas-Caf/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PriceHistoryRepository interface {
	Create(ctx context.Context, h *model.PriceHistory) error
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.PriceHistory, error)
}

type priceHistoryRepo struct{ db *gorm.DB }

func NewPriceHistoryRepository(db *gorm.DB) PriceHistoryRepository {
	return &priceHistoryRepo{db: db}
}

func (r *priceHistoryRepo) Create(ctx context.Context, h *model.PriceHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *priceHistoryRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.PriceHistory, error) {
	var entries []model.PriceHistory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
