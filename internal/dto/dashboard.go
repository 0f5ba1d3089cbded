package dto

import (
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardSummaryResponse defines the aggregate metrics returned to the
// dashboard, plus the low-stock lines that need restocking attention.
type DashboardSummaryResponse struct {
	TotalRevenue        decimal.Decimal     `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal     `json:"totalExpenses"`
	NetProfit           decimal.Decimal     `json:"netProfit"`
	TotalStockValue     decimal.Decimal     `json:"totalStockValue"`
	TotalDebt           decimal.Decimal     `json:"totalDebt"`
	TotalCreditExtended decimal.Decimal     `json:"totalCreditExtended"`
	LowStockItems       []StockItemResponse `json:"lowStockItems"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO form.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	low := make([]StockItemResponse, len(s.LowStockItems))
	for i, item := range s.LowStockItems {
		low[i] = ToStockItemResponse(&item)
	}
	return DashboardSummaryResponse{
		TotalRevenue:        s.TotalRevenue,
		TotalExpenses:       s.TotalExpenses,
		NetProfit:           s.NetProfit,
		TotalStockValue:     s.TotalStockValue,
		TotalDebt:           s.TotalDebt,
		TotalCreditExtended: s.TotalCreditExtended,
		LowStockItems:       low,
	}
}
