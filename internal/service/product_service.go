package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	catalogCacheKey = "catalog:active"
	catalogCacheTTL = 5 * time.Minute
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	// Catalog returns the active products for the sale screen (cached).
	Catalog(ctx context.Context) ([]dto.ProductResponse, error)
	ListAll(ctx context.Context) ([]dto.ProductResponse, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id uuid.UUID, changedBy uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	PriceHistory(ctx context.Context, productID uuid.UUID) ([]dto.PriceHistoryResponse, error)
}

type productService struct {
	products repository.ProductRepository
	history  repository.PriceHistoryRepository
	cache    *redis.Client // nil disables caching
}

func NewProductService(
	products repository.ProductRepository,
	history repository.PriceHistoryRepository,
	cache *redis.Client,
) ProductService {
	return &productService{products: products, history: history, cache: cache}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Description: req.Description,
		Active:      true,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidateCatalog(ctx)
	resp := productToResponse(product)
	return &resp, nil
}

func (s *productService) FindByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	resp := productToResponse(product)
	return &resp, nil
}

// Catalog serves the sale screen, which is read on every terminal refresh, so
// it goes through Redis. A cache miss or error falls through to the database.
func (s *productService) Catalog(ctx context.Context) ([]dto.ProductResponse, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, catalogCacheKey).Bytes(); err == nil {
			var cached []dto.ProductResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	products, err := s.products.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}

	if s.cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache catalog")
			}
		}
	}
	return out, nil
}

func (s *productService) ListAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	return s.products.ListCategories(ctx)
}

// Update applies a partial edit. A price change is additionally recorded in
// the price history, attributed to the editing user.
func (s *productService) Update(ctx context.Context, id uuid.UUID, changedBy uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Category != "" {
		product.Category = req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}

	var priceChanged bool
	oldPrice := product.Price
	if req.Price != nil && !req.Price.Equal(product.Price) {
		product.Price = *req.Price
		priceChanged = true
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	if priceChanged {
		entry := &model.PriceHistory{
			ID:        uuid.New(),
			ProductID: product.ID,
			OldPrice:  oldPrice,
			NewPrice:  product.Price,
			ChangedBy: changedBy,
		}
		if err := s.history.Create(ctx, entry); err != nil {
			log.Warn().Err(err).Str("product_id", id.String()).Msg("failed to record price change")
		}
	}
	s.invalidateCatalog(ctx)
	resp := productToResponse(product)
	return &resp, nil
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Deactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *productService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Reactivate(ctx, id); err != nil {
		return err
	}
	s.invalidateCatalog(ctx)
	return nil
}

func (s *productService) PriceHistory(ctx context.Context, productID uuid.UUID) ([]dto.PriceHistoryResponse, error) {
	entries, err := s.history.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.PriceHistoryResponse{
			OldPrice:  e.OldPrice.Round(2),
			NewPrice:  e.NewPrice.Round(2),
			ChangedBy: e.ChangedBy.String(),
			ChangedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return out, nil
}

func (s *productService) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate catalog cache")
	}
}

func productToResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.Round(2),
		Description: p.Description,
		Active:      p.Active,
	}
}
