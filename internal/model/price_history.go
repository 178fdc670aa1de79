package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceHistory records every catalog price change. Sales carry their own
// price snapshots; this table exists so a snapshot can be explained later
// ("the price was X between these dates").
type PriceHistory struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;index;not null"`
	OldPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NewPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ChangedBy uuid.UUID       `gorm:"type:uuid"`
	CreatedAt time.Time
}
