package pos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one product entry in an in-progress cart. Name and UnitPrice are
// snapshots taken when the line is added — later catalog edits must not leak
// into a checkout already underway, and the same snapshot is what settlement
// copies into the permanent sale record.
type CartLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Subtotal is UnitPrice × Quantity, exact.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates lines for a single checkout attempt. It is pure in-memory
// state owned by one request/terminal; nothing is persisted until settlement.
type Cart struct {
	lines []CartLine
}

// AddLine appends a line with quantity 1, or increments the quantity when a
// line for the same product already exists.
func (c *Cart) AddLine(productID uuid.UUID, name string, unitPrice decimal.Decimal) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// SetQuantity sets the quantity of the product's line. Quantities below 1
// remove the line instead. Unknown products are a no-op.
func (c *Cart) SetQuantity(productID uuid.UUID, qty int) {
	if qty < 1 {
		c.RemoveLine(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// RemoveLine drops the product's line, preserving the order of the rest.
func (c *Cart) RemoveLine(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear discards all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Len returns the number of distinct lines.
func (c *Cart) Len() int { return len(c.lines) }

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is Σ(unit price × quantity) over all lines, computed exactly.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
