package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an append-only ledger entry created exactly once at settlement time.
// It is never updated or deleted, and it is permanently associated with the
// session that was OPEN when it was settled.
type Sale struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SessionID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	OperatorID uuid.UUID  `gorm:"type:uuid;not null"`
	CustomerID *uuid.UUID `gorm:"type:uuid"`
	// Total is Σ line subtotals; Change = Σ payments − Total, never negative.
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Change    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time

	Items    []SaleItem    `gorm:"foreignKey:SaleID"`
	Payments []SalePayment `gorm:"foreignKey:SaleID"`
	Customer *Customer     `gorm:"foreignKey:CustomerID"`
}

// SaleItem is a denormalized snapshot of a cart line. Name and UnitPrice are
// copied at settlement so later catalog edits never change past sales.
type SaleItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name      string          `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// SalePayment is one tender of a (possibly split) payment.
// Method: CASH | PIX | DEBIT | CREDIT.
type SalePayment struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SaleID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Method string          `gorm:"type:varchar(10);not null"`
	Amount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}
