package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type OpenRegisterRequest struct {
	OpeningBalance decimal.Decimal `json:"opening_balance" validate:"min=0"`
}

type CloseRegisterRequest struct {
	// CountedBalance is the optional manual cash count. When omitted the close
	// trusts the computed expected balance (difference fixed at 0).
	CountedBalance *decimal.Decimal `json:"counted_balance" validate:"omitempty,min=0"`
	Observations   *string          `json:"observations"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SessionResponse struct {
	ID              string           `json:"id"`
	OperatorID      string           `json:"operator_id"`
	Status          string           `json:"status"`
	OpeningBalance  decimal.Decimal  `json:"opening_balance"`
	SaleCount       int              `json:"sale_count"`
	TotalSales      decimal.Decimal  `json:"total_sales"`
	ExpectedBalance *decimal.Decimal `json:"expected_balance,omitempty"`
	ClosingBalance  *decimal.Decimal `json:"closing_balance,omitempty"`
	Difference      *decimal.Decimal `json:"difference,omitempty"`
	Observations    *string          `json:"observations,omitempty"`
	OpenedAt        string           `json:"opened_at"`
	ClosedAt        *string          `json:"closed_at,omitempty"`
}

// MethodTotalsResponse is the per-method cash position of a session or report
// window, after change has been deducted from the cash bucket.
type MethodTotalsResponse struct {
	Cash   decimal.Decimal `json:"cash"`
	Pix    decimal.Decimal `json:"pix"`
	Debit  decimal.Decimal `json:"debit"`
	Credit decimal.Decimal `json:"credit"`
	Total  decimal.Decimal `json:"total"`
}

type SessionSummaryResponse struct {
	SessionID       string               `json:"session_id"`
	Status          string               `json:"status"`
	OpeningBalance  decimal.Decimal      `json:"opening_balance"`
	SaleCount       int                  `json:"sale_count"`
	TotalSales      decimal.Decimal      `json:"total_sales"`
	ByMethod        MethodTotalsResponse `json:"by_method"`
	ExpectedBalance decimal.Decimal      `json:"expected_balance"` // opening + total sales
}

type SessionListResponse struct {
	Data  []SessionResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
