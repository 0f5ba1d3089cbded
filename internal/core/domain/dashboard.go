package domain

import "github.com/shopspring/decimal"

// DashboardSummary holds the aggregate financial metrics derived from the
// base collections. Every value is recomputed from scratch on each read;
// nothing here is stored.
type DashboardSummary struct {
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	TotalStockValue     decimal.Decimal `json:"totalStockValue"`
	TotalDebt           decimal.Decimal `json:"totalDebt"`
	TotalCreditExtended decimal.Decimal `json:"totalCreditExtended"`
	LowStockItems       []StockItem     `json:"lowStockItems"`
}
