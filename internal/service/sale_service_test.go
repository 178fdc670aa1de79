package service

import (
	"context"
	"errors"
	"testing"

	"github.com/InhotaEverton/Aromas-Caf/internal/config"
	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/pos"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	sessions  *fakeSessionRepo
	sales     *fakeSaleRepo
	products  *fakeProductRepo
	registers RegisterService
	svc       SaleService
}

func newCheckoutFixture(t *testing.T, openRegister bool) *checkoutFixture {
	t.Helper()
	sessions := newFakeSessionRepo()
	sales := newFakeSaleRepo(sessions)
	products := newFakeProductRepo()
	registers := NewRegisterService(sessions)

	if openRegister {
		_, err := registers.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
			OpeningBalance: mustDecimal("100.00"),
		})
		require.NoError(t, err)
	}

	return &checkoutFixture{
		sessions:  sessions,
		sales:     sales,
		products:  products,
		registers: registers,
		svc:       NewSaleService(sales, products, registers, nil, &config.Config{}),
	}
}

func TestCheckoutCashWithChange(t *testing.T) {
	// 2 × 12.50 + 1 × 9.00 = 34.00, paid 40.00 cash → change 6.00
	fx := newCheckoutFixture(t, true)
	espresso := fx.products.add("Espresso", "12.50", true)
	cake := fx.products.add("Carrot Cake", "9.00", true)

	resp, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: espresso.ID.String(), Quantity: 2},
			{ProductID: cake.ID.String(), Quantity: 1},
		},
		Payments: []dto.CheckoutPaymentRequest{
			{Method: "CASH", Amount: mustDecimal("40.00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "34", resp.Total.String())
	assert.Equal(t, "6", resp.Change.String())
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Espresso", resp.Items[0].Name)
	assert.Equal(t, "25", resp.Items[0].Subtotal.String())
	assert.Len(t, fx.sales.sales, 1)
}

func TestCheckoutSplitTender(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	product := fx.products.add("Latte", "34.00", true)

	resp, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{
			{Method: "CASH", Amount: mustDecimal("20.00")},
			{Method: "PIX", Amount: mustDecimal("14.00")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "0", resp.Change.String())
	require.Len(t, resp.Payments, 2)
	assert.Equal(t, "CASH", resp.Payments[0].Method)
	assert.Equal(t, "PIX", resp.Payments[1].Method)
}

func TestCheckoutDuplicateLinesAccumulate(t *testing.T) {
	// Two request lines for the same product merge into one cart line with
	// the summed quantity.
	fx := newCheckoutFixture(t, true)
	espresso := fx.products.add("Espresso", "12.50", true)

	resp, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items: []dto.CheckoutItemRequest{
			{ProductID: espresso.ID.String(), Quantity: 2},
			{ProductID: espresso.ID.String(), Quantity: 1},
		},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("40.00")}},
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.Equal(t, "37.5", resp.Items[0].Subtotal.String())
	assert.Equal(t, "37.5", resp.Total.String())
	assert.Equal(t, "2.5", resp.Change.String())
}

func TestCheckoutInsufficientPayment(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	product := fx.products.add("Latte", "34.00", true)

	_, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("33.99")}},
	})

	assert.ErrorIs(t, err, pos.ErrInsufficientPayment)
	assert.Empty(t, fx.sales.sales, "nothing may be persisted on failure")
}

func TestCheckoutEmptyCart(t *testing.T) {
	fx := newCheckoutFixture(t, true)

	_, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    nil,
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("10.00")}},
	})

	assert.ErrorIs(t, err, pos.ErrEmptyCart)
}

func TestCheckoutRegisterClosed(t *testing.T) {
	fx := newCheckoutFixture(t, false)
	product := fx.products.add("Latte", "34.00", true)

	_, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("40.00")}},
	})

	assert.ErrorIs(t, err, pos.ErrRegisterClosed)
}

func TestCheckoutInvalidPayment(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	product := fx.products.add("Latte", "34.00", true)

	_, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("-5.00")}},
	})
	assert.ErrorIs(t, err, pos.ErrInvalidAmount)

	_, err = fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CHECK", Amount: mustDecimal("40.00")}},
	})
	assert.ErrorIs(t, err, pos.ErrInvalidAmount)
}

func TestCheckoutInactiveProduct(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	retired := fx.products.add("Seasonal Blend", "15.00", false)

	_, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: retired.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("20.00")}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func TestCheckoutPersistenceFailure(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	product := fx.products.add("Latte", "34.00", true)
	fx.sales.failNext = errors.New("disk full")

	_, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CASH", Amount: mustDecimal("40.00")}},
	})

	assert.ErrorIs(t, err, pos.ErrPersistence)
	assert.Empty(t, fx.sales.sales)
}

func TestCheckoutSnapshotsSurviveCatalogEdits(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	product := fx.products.add("Espresso", "12.50", true)

	resp, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 1}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "DEBIT", Amount: mustDecimal("12.50")}},
	})
	require.NoError(t, err)

	// Catalog edits after settlement must not rewrite the sale record
	product.Name = "Double Espresso"
	product.Price = mustDecimal("18.00")

	stored, err := fx.svc.FindByID(context.Background(), uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "Espresso", stored.Items[0].Name)
	assert.Equal(t, "12.5", stored.Items[0].UnitPrice.String())
}

func TestCheckoutSaleJoinsOpenSession(t *testing.T) {
	fx := newCheckoutFixture(t, true)
	product := fx.products.add("Latte", "10.00", true)

	resp, err := fx.svc.Checkout(context.Background(), uuid.New(), dto.CheckoutRequest{
		Items:    []dto.CheckoutItemRequest{{ProductID: product.ID.String(), Quantity: 3}},
		Payments: []dto.CheckoutPaymentRequest{{Method: "CREDIT", Amount: mustDecimal("30.00")}},
	})
	require.NoError(t, err)

	open, err := fx.registers.FindOpen(context.Background())
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, open.ID.String(), resp.SessionID)
	require.Len(t, open.Sales, 1)
	assert.Equal(t, "30", open.Sales[0].Total.String())
}
