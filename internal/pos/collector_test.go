package pos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorAdd(t *testing.T) {
	var pc PaymentCollector

	require.NoError(t, pc.Add(MethodCash, d("20.00")))
	require.NoError(t, pc.Add(MethodPix, d("14.00")))

	assert.Equal(t, 2, pc.Len())
	assert.Equal(t, "34", pc.Total().String())
}

func TestCollectorRejectsInvalid(t *testing.T) {
	var pc PaymentCollector

	assert.ErrorIs(t, pc.Add(MethodCash, d("0")), ErrInvalidAmount)
	assert.ErrorIs(t, pc.Add(MethodCash, d("-1.00")), ErrInvalidAmount)
	assert.ErrorIs(t, pc.Add(PaymentMethod("CHECK"), d("10.00")), ErrInvalidAmount)

	// Rejected adds leave the collector unchanged
	assert.Equal(t, 0, pc.Len())
	assert.Equal(t, "0", pc.Total().String())
}

func TestCollectorRemove(t *testing.T) {
	var pc PaymentCollector
	require.NoError(t, pc.Add(MethodCash, d("10.00")))
	require.NoError(t, pc.Add(MethodDebit, d("5.00")))

	require.NoError(t, pc.Remove(0))
	assert.Equal(t, 1, pc.Len())
	assert.Equal(t, MethodDebit, pc.Payments()[0].Method)

	assert.Error(t, pc.Remove(5))
	assert.Error(t, pc.Remove(-1))
}

func TestRemainingAndChange(t *testing.T) {
	var pc PaymentCollector
	total := d("34.00")

	assert.Equal(t, "34", pc.RemainingDue(total).String())
	assert.Equal(t, "0", pc.ChangeDue(total).String())

	require.NoError(t, pc.Add(MethodCash, d("20.00")))
	assert.Equal(t, "14", pc.RemainingDue(total).String())
	assert.Equal(t, "0", pc.ChangeDue(total).String())

	require.NoError(t, pc.Add(MethodCash, d("20.00")))
	assert.Equal(t, "0", pc.RemainingDue(total).String())
	assert.Equal(t, "6", pc.ChangeDue(total).String())
}

func TestMethodTotalsTally(t *testing.T) {
	totals := NewMethodTotals()

	// Sale 1: 34.00 paid 40.00 cash → change 6.00
	totals.Tally([]Payment{{Method: MethodCash, Amount: d("40.00")}}, d("6.00"))
	// Sale 2: 25.00 split 10.00 cash + 15.00 credit, no change
	totals.Tally([]Payment{
		{Method: MethodCash, Amount: d("10.00")},
		{Method: MethodCredit, Amount: d("15.00")},
	}, d("0"))

	assert.Equal(t, "44", totals[MethodCash].String()) // 40 − 6 + 10
	assert.Equal(t, "15", totals[MethodCredit].String())
	assert.Equal(t, "0", totals[MethodPix].String())
	// Buckets reconcile with Σ sale totals
	assert.Equal(t, "59", totals.Sum().String())
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range Methods {
		assert.True(t, m.Valid())
	}
	assert.False(t, PaymentMethod("CHECK").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
