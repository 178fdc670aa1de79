package pos

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Payment is a single tendered amount tagged with its method. A sale may be
// paid with any mix of payments (split tender).
type Payment struct {
	Method PaymentMethod   `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// PaymentCollector holds the ordered payments of the current checkout attempt.
// It never auto-applies change to a specific tender: change is a single derived
// scalar, attributed to the cash method at reconciliation (see MethodTotals.Tally).
type PaymentCollector struct {
	payments []Payment
}

// Add appends a payment. Non-positive amounts and unknown methods are rejected
// with ErrInvalidAmount and leave the collector unchanged.
func (pc *PaymentCollector) Add(method PaymentMethod, amount decimal.Decimal) error {
	if !method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidAmount, string(method))
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	pc.payments = append(pc.payments, Payment{Method: method, Amount: amount})
	return nil
}

// Remove deletes the payment at index, keeping the order of the rest.
func (pc *PaymentCollector) Remove(index int) error {
	if index < 0 || index >= len(pc.payments) {
		return fmt.Errorf("payment index %d out of range", index)
	}
	pc.payments = append(pc.payments[:index], pc.payments[index+1:]...)
	return nil
}

// Payments returns a copy of the tendered payments in order.
func (pc *PaymentCollector) Payments() []Payment {
	out := make([]Payment, len(pc.payments))
	copy(out, pc.payments)
	return out
}

// Len returns the number of payments collected so far.
func (pc *PaymentCollector) Len() int { return len(pc.payments) }

// Total is the sum of all tendered amounts.
func (pc *PaymentCollector) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range pc.payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RemainingDue is max(0, cartTotal − Σ payments); used to pre-fill the next
// suggested tender amount.
func (pc *PaymentCollector) RemainingDue(cartTotal decimal.Decimal) decimal.Decimal {
	remaining := cartTotal.Sub(pc.Total())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ChangeDue is max(0, Σ payments − cartTotal).
func (pc *PaymentCollector) ChangeDue(cartTotal decimal.Decimal) decimal.Decimal {
	change := pc.Total().Sub(cartTotal)
	if change.IsNegative() {
		return decimal.Zero
	}
	return change
}
