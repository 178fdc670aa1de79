package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles. ADMIN has full access; OPERATOR works the register, sales, customers
// and reports but cannot manage the catalog or users.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User is a system account. Inactive users cannot authenticate.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
