package pos

import "errors"

// Domain failures. All are recoverable: the caller decides whether to retry,
// correct the input, or abandon the operation. State is never left half-mutated
// when one of these is returned.
var (
	// ErrRegisterAlreadyOpen — a second Open was attempted while a session is OPEN.
	ErrRegisterAlreadyOpen = errors.New("a register session is already open")

	// ErrRegisterClosed — a sale or close was attempted with no OPEN session.
	ErrRegisterClosed = errors.New("no open register session")

	// ErrInsufficientPayment — tendered total is below the cart total.
	ErrInsufficientPayment = errors.New("tendered amount is less than the sale total")

	// ErrEmptyCart — settlement attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidAmount — non-positive money input.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrPersistence wraps storage collaborator failures. During settlement it
	// propagates as a hard stop so the operator can retry without losing the
	// in-progress order.
	ErrPersistence = errors.New("persistence failure")
)
