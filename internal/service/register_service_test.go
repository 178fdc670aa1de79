package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/pos"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOpenRegister(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	resp, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})

	require.NoError(t, err)
	assert.Equal(t, model.SessionOpen, resp.Status)
	assert.Equal(t, "100", resp.OpeningBalance.String())
	assert.Equal(t, 0, resp.SaleCount)
}

func TestOpenRegisterTwice(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	require.NoError(t, err)

	_, err = svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("50.00"),
	})
	assert.ErrorIs(t, err, pos.ErrRegisterAlreadyOpen)
}

func TestOpenRegisterRace(t *testing.T) {
	// A second terminal can slip past the FindOpen check; the unique index
	// rejects the insert and the service maps it to the same domain error.
	repo := newFakeSessionRepo()
	repo.failNext = gorm.ErrDuplicatedKey
	svc := NewRegisterService(repo)

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	assert.ErrorIs(t, err, pos.ErrRegisterAlreadyOpen)
}

func TestOpenRegisterPersistenceError(t *testing.T) {
	repo := newFakeSessionRepo()
	repo.failNext = errors.New("connection reset")
	svc := NewRegisterService(repo)

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	assert.ErrorIs(t, err, pos.ErrPersistence)
}

func TestCloseWithoutOpenSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	_, err := svc.Close(context.Background(), dto.CloseRegisterRequest{})
	assert.ErrorIs(t, err, pos.ErrRegisterClosed)
}

func TestCloseReconciliation(t *testing.T) {
	// Opening 100.00 + one 34.00 sale → expected balance 134.00. No counted
	// balance: the close trusts the computed amount and difference is 0.
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	opened, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	require.NoError(t, err)

	session := repo.sessions[uuid.MustParse(opened.ID)]
	session.Sales = append(session.Sales, model.Sale{
		ID:        uuid.New(),
		SessionID: session.ID,
		Total:     mustDecimal("34.00"),
		Change:    mustDecimal("6.00"),
		CreatedAt: time.Now(),
	})

	closed, err := svc.Close(context.Background(), dto.CloseRegisterRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.SessionClosed, closed.Status)
	require.NotNil(t, closed.ExpectedBalance)
	assert.Equal(t, "134", closed.ExpectedBalance.String())
	assert.Equal(t, "134", closed.ClosingBalance.String())
	assert.Equal(t, "0", closed.Difference.String())
	assert.NotNil(t, closed.ClosedAt)
}

func TestCloseWithCountedBalance(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	require.NoError(t, err)

	counted := mustDecimal("96.50")
	obs := "missing change float"
	closed, err := svc.Close(context.Background(), dto.CloseRegisterRequest{
		CountedBalance: &counted,
		Observations:   &obs,
	})
	require.NoError(t, err)
	assert.Equal(t, "96.5", closed.ClosingBalance.String())
	assert.Equal(t, "-3.5", closed.Difference.String())
	require.NotNil(t, closed.Observations)
	assert.Equal(t, obs, *closed.Observations)
}

func TestCloseIsTerminal(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), dto.CloseRegisterRequest{})
	require.NoError(t, err)

	// Second close has no open session to act on
	_, err = svc.Close(context.Background(), dto.CloseRegisterRequest{})
	assert.ErrorIs(t, err, pos.ErrRegisterClosed)

	// But a fresh session may open afterwards
	_, err = svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("200.00"),
	})
	assert.NoError(t, err)
}

func TestHistoryIncludesOpenSession(t *testing.T) {
	// History is the full session log: the currently open session appears
	// alongside closed ones.
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	_, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("50.00"),
	})
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), dto.CloseRegisterRequest{})
	require.NoError(t, err)

	_, err = svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("75.00"),
	})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), history.Total)

	statuses := map[string]int{}
	for _, s := range history.Data {
		statuses[s.Status]++
	}
	assert.Equal(t, 1, statuses[model.SessionOpen])
	assert.Equal(t, 1, statuses[model.SessionClosed])
}

func TestCurrentWithNoSession(t *testing.T) {
	svc := NewRegisterService(newFakeSessionRepo())

	resp, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSessionSummaryMethodTotals(t *testing.T) {
	// Split sale: 34.00 total paid 20.00 cash + 20.00 pix → change 6.00.
	// Cash bucket = 20 − 6 = 14, pix = 20; Σ buckets = sale total.
	repo := newFakeSessionRepo()
	svc := NewRegisterService(repo)

	opened, err := svc.Open(context.Background(), uuid.New(), dto.OpenRegisterRequest{
		OpeningBalance: mustDecimal("100.00"),
	})
	require.NoError(t, err)
	sessionID := uuid.MustParse(opened.ID)

	session := repo.sessions[sessionID]
	session.Sales = append(session.Sales, model.Sale{
		ID:        uuid.New(),
		SessionID: sessionID,
		Total:     mustDecimal("34.00"),
		Change:    mustDecimal("6.00"),
		Payments: []model.SalePayment{
			{Method: "CASH", Amount: mustDecimal("20.00")},
			{Method: "PIX", Amount: mustDecimal("20.00")},
		},
		CreatedAt: time.Now(),
	})

	summary, err := svc.Summary(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, "14", summary.ByMethod.Cash.String())
	assert.Equal(t, "20", summary.ByMethod.Pix.String())
	assert.Equal(t, "0", summary.ByMethod.Debit.String())
	assert.Equal(t, "34", summary.ByMethod.Total.String())
	assert.Equal(t, "34", summary.TotalSales.String())
	assert.Equal(t, "134", summary.ExpectedBalance.String())
	assert.Equal(t, 1, summary.SaleCount)
}
