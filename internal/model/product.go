package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Settled sales never reference a Product row
// directly — they carry name/price snapshots — so price edits and deactivation
// never rewrite history.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"index;not null"`
	Category    string          `gorm:"index;not null"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
