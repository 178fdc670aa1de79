// Package pos holds the pure in-memory checkout domain: money conventions,
// the cart aggregator and the payment collector. Nothing in this package
// touches persistence; settlement and session bookkeeping live in the service
// layer and consume these types.
//
// Money is represented with shopspring/decimal throughout. Intermediate totals
// are never rounded; Round(2) / StringFixed(2) are applied only at presentation
// boundaries (DTOs, PDFs).
package pos

import "github.com/shopspring/decimal"

// PaymentMethod is the closed set of tender types. Keeping it a closed enum
// (instead of free-form strings) makes reporting exhaustive and typo-proof.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "CASH"
	MethodPix    PaymentMethod = "PIX"
	MethodDebit  PaymentMethod = "DEBIT"
	MethodCredit PaymentMethod = "CREDIT"
)

// Methods lists every payment method in presentation order.
var Methods = []PaymentMethod{MethodCash, MethodPix, MethodDebit, MethodCredit}

// Valid reports whether m is one of the known methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodPix, MethodDebit, MethodCredit:
		return true
	}
	return false
}

// MethodTotals accumulates an amount per payment method.
type MethodTotals map[PaymentMethod]decimal.Decimal

// NewMethodTotals returns a tally with every method zeroed, so consumers can
// range over all buckets without nil checks.
func NewMethodTotals() MethodTotals {
	t := make(MethodTotals, len(Methods))
	for _, m := range Methods {
		t[m] = decimal.Zero
	}
	return t
}

// Tally adds a sale's payments to the per-method buckets and deducts the
// change given from the CASH bucket. Change is always attributed to cash:
// card and pix captures are for the exact tendered amount, while cash change
// physically leaves the drawer. This keeps the invariant
//
//	Σ sale.total = Σ method buckets
//
// for any mix of tenders.
func (t MethodTotals) Tally(payments []Payment, change decimal.Decimal) {
	for _, p := range payments {
		t[p.Method] = t[p.Method].Add(p.Amount)
	}
	if change.IsPositive() {
		t[MethodCash] = t[MethodCash].Sub(change)
	}
}

// Sum returns the total across all buckets.
func (t MethodTotals) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, m := range Methods {
		total = total.Add(t[m])
	}
	return total
}
