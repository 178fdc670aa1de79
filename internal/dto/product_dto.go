package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=1,max=150"`
	Category    string          `json:"category"    validate:"required,min=1,max=100"`
	Price       decimal.Decimal `json:"price"       validate:"min=0"`
	Description string          `json:"description"`
}

type UpdateProductRequest struct {
	Name        string           `json:"name"        validate:"omitempty,min=1,max=150"`
	Category    string           `json:"category"    validate:"omitempty,min=1,max=100"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,min=0"`
	Description *string          `json:"description"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
}

type PriceHistoryResponse struct {
	OldPrice  decimal.Decimal `json:"old_price"`
	NewPrice  decimal.Decimal `json:"new_price"`
	ChangedBy string          `json:"changed_by"`
	ChangedAt string          `json:"changed_at"`
}
