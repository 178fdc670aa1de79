package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/InhotaEverton/Aromas-Caf/internal/dto"
	"github.com/InhotaEverton/Aromas-Caf/internal/model"
	"github.com/InhotaEverton/Aromas-Caf/internal/pos"
	"github.com/InhotaEverton/Aromas-Caf/internal/repository"

	"github.com/shopspring/decimal"
)

// Report ranges. "today" is the local calendar day, the day windows are
// rolling (now − N days), and "all" is unbounded.
const (
	RangeToday  = "today"
	Range7Days  = "7days"
	Range30Days = "30days"
	RangeAll    = "all"
)

type ReportService interface {
	Build(ctx context.Context, rangeKey string) (*dto.ReportResponse, error)
}

type reportService struct {
	sessions repository.SessionRepository
	now      func() time.Time // injectable for tests
}

func NewReportService(sessions repository.SessionRepository) ReportService {
	return &reportService{sessions: sessions, now: time.Now}
}

// Build aggregates every sale in the window — across sessions, open or
// closed — into KPIs, a product ranking, a per-method split and a daily
// revenue series. All sums are exact; rounding happens only in the response.
func (s *reportService) Build(ctx context.Context, rangeKey string) (*dto.ReportResponse, error) {
	cutoff, err := s.cutoff(rangeKey)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListAllWithSales(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pos.ErrPersistence, err)
	}

	var sales []model.Sale
	for _, session := range sessions {
		for _, sale := range session.Sales {
			if cutoff.IsZero() || !sale.CreatedAt.Before(cutoff) {
				sales = append(sales, sale)
			}
		}
	}

	resp := &dto.ReportResponse{
		Range:       rangeKey,
		TopProducts: rankProducts(sales),
		Daily:       dailyRevenue(sales),
	}

	revenue := decimal.Zero
	totals := pos.NewMethodTotals()
	for i := range sales {
		revenue = revenue.Add(sales[i].Total)
		totals.Tally(salePayments(sales[i].Payments), sales[i].Change)
	}
	resp.ByMethod = methodTotalsToResponse(totals)

	resp.KPIs = dto.ReportKPIs{
		TotalRevenue: revenue.Round(2),
		SaleCount:    len(sales),
	}
	if len(sales) > 0 {
		resp.KPIs.AverageTicket = revenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	} else {
		resp.KPIs.AverageTicket = decimal.Zero
	}
	if len(resp.TopProducts) > 0 {
		resp.KPIs.BestSeller = resp.TopProducts[0].Name
	}

	return resp, nil
}

// cutoff returns the inclusive lower bound of the window; the zero time means
// no bound.
func (s *reportService) cutoff(rangeKey string) (time.Time, error) {
	now := s.now()
	switch rangeKey {
	case RangeToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	case Range7Days:
		return now.AddDate(0, 0, -7), nil
	case Range30Days:
		return now.AddDate(0, 0, -30), nil
	case RangeAll, "":
		return time.Time{}, nil
	}
	return time.Time{}, fmt.Errorf("unknown report range %q", rangeKey)
}

// rankProducts aggregates item quantities per product across all sales and
// returns the top 5. Quantity breaks ties first, then product id, so the
// ranking is deterministic run to run.
func rankProducts(sales []model.Sale) []dto.ProductRankEntry {
	type acc struct {
		name     string
		quantity int
		total    decimal.Decimal
	}
	byProduct := map[string]*acc{}
	for _, sale := range sales {
		for _, item := range sale.Items {
			key := item.ProductID.String()
			a, ok := byProduct[key]
			if !ok {
				a = &acc{name: item.Name, total: decimal.Zero}
				byProduct[key] = a
			}
			a.quantity += item.Quantity
			a.total = a.total.Add(item.Subtotal)
		}
	}

	entries := make([]dto.ProductRankEntry, 0, len(byProduct))
	for id, a := range byProduct {
		entries = append(entries, dto.ProductRankEntry{
			ProductID: id,
			Name:      a.name,
			Quantity:  a.quantity,
			Total:     a.total.Round(2),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quantity != entries[j].Quantity {
			return entries[i].Quantity > entries[j].Quantity
		}
		return entries[i].ProductID < entries[j].ProductID
	})
	if len(entries) > 5 {
		entries = entries[:5]
	}
	return entries
}

// dailyRevenue buckets sale totals by local calendar day, ascending.
func dailyRevenue(sales []model.Sale) []dto.DailyRevenueEntry {
	byDay := map[string]decimal.Decimal{}
	for _, sale := range sales {
		day := sale.CreatedAt.Format("2006-01-02")
		byDay[day] = byDay[day].Add(sale.Total)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	entries := make([]dto.DailyRevenueEntry, 0, len(days))
	for _, day := range days {
		entries = append(entries, dto.DailyRevenueEntry{Date: day, Total: byDay[day].Round(2)})
	}
	return entries
}
