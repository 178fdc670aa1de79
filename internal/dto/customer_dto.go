package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveCustomerRequest struct {
	Name  string  `json:"name"   validate:"required,min=1,max=150"`
	Phone *string `json:"phone"  validate:"omitempty,max=30"`
	Email *string `json:"email"  validate:"omitempty,email"`
	TaxID *string `json:"tax_id" validate:"omitempty,max=20"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	TaxID *string `json:"tax_id"`
}
