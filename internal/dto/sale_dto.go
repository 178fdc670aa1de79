package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date  string `form:"date"` // YYYY-MM-DD; empty = today
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CheckoutItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
}

type CheckoutPaymentRequest struct {
	Method string          `json:"method" validate:"required,oneof=CASH PIX DEBIT CREDIT"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// CheckoutRequest settles an in-progress cart against tendered payments.
type CheckoutRequest struct {
	Items      []CheckoutItemRequest    `json:"items"    validate:"required,min=1,dive"`
	Payments   []CheckoutPaymentRequest `json:"payments" validate:"required,min=1,dive"`
	CustomerID *string                  `json:"customer_id" validate:"omitempty,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type SalePaymentResponse struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

type SaleResponse struct {
	ID         string                `json:"id"`
	SessionID  string                `json:"session_id"`
	OperatorID string                `json:"operator_id"`
	CustomerID *string               `json:"customer_id,omitempty"`
	Items      []SaleItemResponse    `json:"items"`
	Payments   []SalePaymentResponse `json:"payments"`
	Total      decimal.Decimal       `json:"total"`
	Change     decimal.Decimal       `json:"change"`
	CreatedAt  string                `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
