package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session status values.
const (
	SessionOpen   = "OPEN"
	SessionClosed = "CLOSED"
)

// CashSession is one register-open-to-close period. At most one OPEN row may
// exist system-wide; the service check is backed by a partial unique index on
// status (see infra.applySchemaPatches) so two racing opens cannot both commit.
//
// The session exclusively owns its sales: the list only grows while OPEN and
// is frozen once CLOSED. Closing fields stay nil until close-out.
type CashSession struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OperatorID     uuid.UUID       `gorm:"type:uuid;not null"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status         string          `gorm:"type:varchar(10);not null;default:'OPEN'"`
	// ExpectedBalance is computed on close: OpeningBalance + Σ sale.total.
	ExpectedBalance *decimal.Decimal `gorm:"type:decimal(12,2)"`
	ClosingBalance  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Difference      *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Observations    *string
	OpenedAt        time.Time
	ClosedAt        *time.Time

	Sales []Sale `gorm:"foreignKey:SessionID"`
}

// TotalSales is Σ sale.Total over the loaded sales.
func (s *CashSession) TotalSales() decimal.Decimal {
	total := decimal.Zero
	for _, sale := range s.Sales {
		total = total.Add(sale.Total)
	}
	return total
}
