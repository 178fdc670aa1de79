package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/config"
	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/infra"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/pos"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"
	"github.com/InhotaEverton/Aromas-Caf/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SaleService interface {
	// Checkout settles a cart against tendered payments in a single atomic
	// operation: on success the sale exists with all items and payments; on any
	// failure nothing is persisted and the in-progress order survives.
	Checkout(ctx context.Context, operatorID uuid.UUID, req dto.CheckoutRequest) (*dto.SaleResponse, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	// Receipt renders (or re-renders) the PDF ticket and returns its path.
	Receipt(ctx context.Context, id uuid.UUID) (string, error)
}

type saleService struct {
	sales      repository.SaleRepository
	products   repository.ProductRepository
	registers  RegisterService
	dispatcher *worker.Dispatcher // nil disables receipt jobs
	cfg        *config.Config
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	registers RegisterService,
	dispatcher *worker.Dispatcher,
	cfg *config.Config,
) SaleService {
	return &saleService{
		sales:      sales,
		products:   products,
		registers:  registers,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}

// ── Checkout ─────────────────────────────────────────────────────────────────

func (s *saleService) Checkout(ctx context.Context, operatorID uuid.UUID, req dto.CheckoutRequest) (*dto.SaleResponse, error) {
	// Precondition order matters: session first, then cart, then sufficiency.
	session, err := s.registers.FindOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	if session == nil {
		return nil, pos.ErrRegisterClosed
	}

	cart, err := s.buildCart(ctx, req.Items)
	if err != nil {
		return nil, err
	}
	if cart.Empty() {
		return nil, pos.ErrEmptyCart
	}

	var collector pos.PaymentCollector
	for _, p := range req.Payments {
		if err := collector.Add(pos.PaymentMethod(p.Method), p.Amount); err != nil {
			return nil, err
		}
	}

	total := cart.Total()
	if collector.Total().LessThan(total) {
		return nil, pos.ErrInsufficientPayment
	}
	change := collector.ChangeDue(total)

	sale := &model.Sale{
		ID:         uuid.New(),
		SessionID:  session.ID,
		OperatorID: operatorID,
		Total:      total,
		Change:     change,
		CreatedAt:  time.Now(),
	}
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer id: %w", err)
		}
		sale.CustomerID = &cid
	}
	for _, line := range cart.Lines() {
		sale.Items = append(sale.Items, model.SaleItem{
			ID:        uuid.New(),
			SaleID:    sale.ID,
			ProductID: line.ProductID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	for _, p := range collector.Payments() {
		sale.Payments = append(sale.Payments, model.SalePayment{
			ID:     uuid.New(),
			SaleID: sale.ID,
			Method: string(p.Method),
			Amount: p.Amount,
		})
	}

	err = repository.RunTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		return s.sales.Create(ctx, tx, sale)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}

	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueReceipt(ctx, sale.ID); err != nil {
			// The sale is committed; a lost receipt job is logged, not surfaced.
			log.Warn().Err(err).Str("sale_id", sale.ID.String()).Msg("failed to enqueue receipt job")
		}
	}

	log.Info().
		Str("sale_id", sale.ID.String()).
		Str("session_id", session.ID.String()).
		Str("total", total.StringFixed(2)).
		Str("change", change.StringFixed(2)).
		Int("items", len(sale.Items)).
		Msg("sale settled")

	return saleToResponse(sale), nil
}

// buildCart resolves each requested line against the live catalog and takes
// name/price snapshots. Repeated lines for the same product accumulate into
// one cart line. Unknown or inactive products abort the whole checkout.
func (s *saleService) buildCart(ctx context.Context, items []dto.CheckoutItemRequest) (*pos.Cart, error) {
	cart := &pos.Cart{}
	quantities := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q: %w", item.ProductID, err)
		}
		product, err := s.products.FindByID(ctx, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("product %s not found", item.ProductID)
			}
			return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
		}
		if !product.Active {
			return nil, fmt.Errorf("product %s is not available for sale", product.Name)
		}
		quantities[pid] += item.Quantity
		cart.AddLine(product.ID, product.Name, product.Price)
		cart.SetQuantity(product.ID, quantities[pid])
	}
	return cart, nil
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (s *saleService) FindByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("sale not found")
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	sales, total, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		items = append(items, *saleToResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *saleService) Receipt(ctx context.Context, id uuid.UUID) (string, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return "", errors.New("sale not found")
	}
	return infra.GenerateReceiptPDF(sale, s.cfg.StoreName, s.cfg.PDFStoragePath)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         s.ID.String(),
		SessionID:  s.SessionID.String(),
		OperatorID: s.OperatorID.String(),
		Total:      s.Total.Round(2),
		Change:     s.Change.Round(2),
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
	if s.CustomerID != nil {
		cid := s.CustomerID.String()
		resp.CustomerID = &cid
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Round(2),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal.Round(2),
		})
	}
	for _, p := range s.Payments {
		resp.Payments = append(resp.Payments, dto.SalePaymentResponse{
			Method: p.Method,
			Amount: p.Amount.Round(2),
		})
	}
	return resp
}
