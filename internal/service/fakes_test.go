package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ── In-memory SessionRepository ──────────────────────────────────────────────

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*model.CashSession
	failNext error // returned by the next write, then cleared
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*model.CashSession)}
}

func (r *fakeSessionRepo) takeFailure() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *fakeSessionRepo) Create(_ context.Context, s *model.CashSession) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	// Mimic the partial unique index: one OPEN row system-wide.
	for _, existing := range r.sessions {
		if existing.Status == model.SessionOpen {
			return gorm.ErrDuplicatedKey
		}
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) FindOpen(_ context.Context) (*model.CashSession, error) {
	for _, s := range r.sessions {
		if s.Status == model.SessionOpen {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CashSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *model.CashSession) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) ListHistory(_ context.Context, page, limit int) ([]model.CashSession, int64, error) {
	all := make([]model.CashSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		all = append(all, *s)
	}
	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakeSessionRepo) ListAllWithSales(_ context.Context) ([]model.CashSession, error) {
	all := make([]model.CashSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		all = append(all, *s)
	}
	return all, nil
}

var _ repository.SessionRepository = (*fakeSessionRepo)(nil)

// ── In-memory SaleRepository ─────────────────────────────────────────────────

type fakeSaleRepo struct {
	sessions *fakeSessionRepo // sales are attached to their session on create
	sales    map[uuid.UUID]*model.Sale
	failNext error
}

func newFakeSaleRepo(sessions *fakeSessionRepo) *fakeSaleRepo {
	return &fakeSaleRepo{sessions: sessions, sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *fakeSaleRepo) DB() *gorm.DB { return nil }

func (r *fakeSaleRepo) Create(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	r.sales[s.ID] = s
	if session, ok := r.sessions.sessions[s.SessionID]; ok {
		session.Sales = append(session.Sales, *s)
	}
	return nil
}

func (r *fakeSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *fakeSaleRepo) List(_ context.Context, filter dto.SaleFilter) ([]model.Sale, int64, error) {
	var out []model.Sale
	for _, s := range r.sales {
		if filter.Date != "" && s.CreatedAt.Format("2006-01-02") != filter.Date {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

var _ repository.SaleRepository = (*fakeSaleRepo)(nil)

// ── In-memory ProductRepository ──────────────────────────────────────────────

type fakeProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *fakeProductRepo) add(name string, price string, active bool) *model.Product {
	p := &model.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: "Drinks",
		Price:    mustDecimal(price),
		Active:   active,
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) ListActive(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListAll(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListCategories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, p := range r.products {
		if p.Active && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeProductRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	if p, ok := r.products[id]; ok {
		p.Active = true
	}
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

// ── In-memory UserRepository ─────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) && u.Active {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Active = false
	return nil
}

func (r *fakeUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Active = true
	return nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
