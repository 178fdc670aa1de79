package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an optional reference on a sale. Name is the only required field.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index;not null"`
	Phone     *string
	Email     *string
	TaxID     *string `gorm:"column:tax_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
