package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/pos"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RegisterService interface {
	Open(ctx context.Context, operatorID uuid.UUID, req dto.OpenRegisterRequest) (*dto.SessionResponse, error)
	Close(ctx context.Context, req dto.CloseRegisterRequest) (*dto.SessionResponse, error)
	// Current returns (nil, nil) when no session is open.
	Current(ctx context.Context) (*dto.SessionResponse, error)
	Summary(ctx context.Context, sessionID uuid.UUID) (*dto.SessionSummaryResponse, error)
	History(ctx context.Context, page, limit int) (*dto.SessionListResponse, error)
	// FindOpen is used by SaleService to resolve the session a sale belongs to.
	FindOpen(ctx context.Context) (*model.CashSession, error)
}

type registerService struct {
	repo repository.SessionRepository
}

func NewRegisterService(repo repository.SessionRepository) RegisterService {
	return &registerService{repo: repo}
}

// ── Open ─────────────────────────────────────────────────────────────────────

// Open creates a new OPEN session. The system-wide single-open-session rule is
// checked here and enforced again by the partial unique index, so a race
// between two terminals resolves to exactly one winner.
func (s *registerService) Open(ctx context.Context, operatorID uuid.UUID, req dto.OpenRegisterRequest) (*dto.SessionResponse, error) {
	existing, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	if existing != nil {
		return nil, pos.ErrRegisterAlreadyOpen
	}

	session := &model.CashSession{
		ID:             uuid.New(),
		OperatorID:     operatorID,
		OpeningBalance: req.OpeningBalance,
		Status:         model.SessionOpen,
		OpenedAt:       time.Now(),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		// The index rejects a second OPEN row that slipped past the check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pos.ErrRegisterAlreadyOpen
		}
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}

	return sessionToResponse(session), nil
}

// ── Close ────────────────────────────────────────────────────────────────────

// Close freezes the open session. Expected balance = opening + Σ sale.total.
// With no counted balance the close trusts the computed amount (difference 0);
// a counted balance records the real drawer count and its deviation.
func (s *registerService) Close(ctx context.Context, req dto.CloseRegisterRequest) (*dto.SessionResponse, error) {
	session, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	if session == nil {
		return nil, pos.ErrRegisterClosed
	}

	expected := session.OpeningBalance.Add(session.TotalSales())
	closing := expected
	difference := decimal.Zero
	if req.CountedBalance != nil {
		closing = *req.CountedBalance
		difference = closing.Sub(expected)
	}

	now := time.Now()
	session.Status = model.SessionClosed
	session.ClosedAt = &now
	session.ExpectedBalance = &expected
	session.ClosingBalance = &closing
	session.Difference = &difference
	session.Observations = req.Observations

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	return sessionToResponse(session), nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *registerService) Current(ctx context.Context) (*dto.SessionResponse, error) {
	session, err := s.repo.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	if session == nil {
		return nil, nil
	}
	return sessionToResponse(session), nil
}

func (s *registerService) Summary(ctx context.Context, sessionID uuid.UUID) (*dto.SessionSummaryResponse, error) {
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, errors.New("register session not found")
	}
	return buildSummary(session), nil
}

func (s *registerService) History(ctx context.Context, page, limit int) (*dto.SessionListResponse, error) {
	sessions, total, err := s.repo.ListHistory(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	items := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		items = append(items, *sessionToResponse(&sessions[i]))
	}
	return &dto.SessionListResponse{Data: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *registerService) FindOpen(ctx context.Context) (*model.CashSession, error) {
	return s.repo.FindOpen(ctx)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// buildSummary computes the per-method cash position: gross tendered per
// method, minus the cash share of change given. Total revenue comes from
// Σ sale.total, not Σ payments, which would double count overpayment.
func buildSummary(session *model.CashSession) *dto.SessionSummaryResponse {
	totals := pos.NewMethodTotals()
	for _, sale := range session.Sales {
		totals.Tally(salePayments(sale.Payments), sale.Change)
	}
	totalSales := session.TotalSales()

	return &dto.SessionSummaryResponse{
		SessionID:       session.ID.String(),
		Status:          session.Status,
		OpeningBalance:  session.OpeningBalance,
		SaleCount:       len(session.Sales),
		TotalSales:      totalSales,
		ByMethod:        methodTotalsToResponse(totals),
		ExpectedBalance: session.OpeningBalance.Add(totalSales),
	}
}

func salePayments(payments []model.SalePayment) []pos.Payment {
	out := make([]pos.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, pos.Payment{
			Method: pos.PaymentMethod(p.Method),
			Amount: p.Amount,
		})
	}
	return out
}

func methodTotalsToResponse(t pos.MethodTotals) dto.MethodTotalsResponse {
	return dto.MethodTotalsResponse{
		Cash:   t[pos.MethodCash].Round(2),
		Pix:    t[pos.MethodPix].Round(2),
		Debit:  t[pos.MethodDebit].Round(2),
		Credit: t[pos.MethodCredit].Round(2),
		Total:  t.Sum().Round(2),
	}
}

func sessionToResponse(s *model.CashSession) *dto.SessionResponse {
	resp := &dto.SessionResponse{
		ID:              s.ID.String(),
		OperatorID:      s.OperatorID.String(),
		Status:          s.Status,
		OpeningBalance:  s.OpeningBalance,
		SaleCount:       len(s.Sales),
		TotalSales:      s.TotalSales(),
		ExpectedBalance: s.ExpectedBalance,
		ClosingBalance:  s.ClosingBalance,
		Difference:      s.Difference,
		Observations:    s.Observations,
		OpenedAt:        s.OpenedAt.Format(time.RFC3339),
	}
	if s.ClosedAt != nil {
		t := s.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &t
	}
	return resp
}
