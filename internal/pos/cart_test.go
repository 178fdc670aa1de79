package pos

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestAddLineIncrementsExisting(t *testing.T) {
	var cart Cart
	id := uuid.New()

	cart.AddLine(id, "Espresso", d("12.50"))
	cart.AddLine(id, "Espresso", d("12.50"))

	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
	assert.Equal(t, "25", cart.Total().String())
}

func TestSetQuantity(t *testing.T) {
	var cart Cart
	id := uuid.New()
	cart.AddLine(id, "Latte", d("17.00"))

	cart.SetQuantity(id, 5)
	assert.Equal(t, 5, cart.Lines()[0].Quantity)
	assert.Equal(t, "85", cart.Total().String())

	// Below 1 removes the line instead of keeping a zero-quantity entry
	cart.SetQuantity(id, 0)
	assert.True(t, cart.Empty())
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	var cart Cart
	cart.AddLine(uuid.New(), "Latte", d("17.00"))

	cart.SetQuantity(uuid.New(), 3)
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestRemoveLinePreservesOrder(t *testing.T) {
	var cart Cart
	first, second, third := uuid.New(), uuid.New(), uuid.New()
	cart.AddLine(first, "Espresso", d("12.50"))
	cart.AddLine(second, "Latte", d("17.00"))
	cart.AddLine(third, "Cake", d("9.00"))

	cart.RemoveLine(second)

	lines := cart.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, first, lines[0].ProductID)
	assert.Equal(t, third, lines[1].ProductID)
}

func TestCartTotalExactArithmetic(t *testing.T) {
	// 0.1 + 0.2 style amounts must sum exactly, not to 0.30000000000000004
	var cart Cart
	cart.AddLine(uuid.New(), "A", d("0.10"))
	cart.AddLine(uuid.New(), "B", d("0.20"))

	assert.True(t, cart.Total().Equal(d("0.30")))
}

func TestLinesReturnsCopy(t *testing.T) {
	var cart Cart
	id := uuid.New()
	cart.AddLine(id, "Espresso", d("12.50"))

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Lines()[0].Quantity)
}

func TestClear(t *testing.T) {
	var cart Cart
	cart.AddLine(uuid.New(), "Espresso", d("12.50"))
	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Equal(t, "0", cart.Total().String())
}
