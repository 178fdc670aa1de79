package dto

import "github.com/shopspring/decimal"

// ReportKPIs are the headline numbers for the selected time window.
type ReportKPIs struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	SaleCount     int             `json:"sale_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"`
	BestSeller    string          `json:"best_seller"`
}

// ProductRankEntry is one row of the per-product ranking.
type ProductRankEntry struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// DailyRevenueEntry is one point of the revenue time series.
type DailyRevenueEntry struct {
	Date  string          `json:"date"` // YYYY-MM-DD, local
	Total decimal.Decimal `json:"total"`
}

type ReportResponse struct {
	Range       string               `json:"range"` // today | 7days | 30days | all
	KPIs        ReportKPIs           `json:"kpis"`
	TopProducts []ProductRankEntry   `json:"top_products"`
	ByMethod    MethodTotalsResponse `json:"by_method"`
	Daily       []DailyRevenueEntry  `json:"daily"`
}
