package services

import (
	"context"
	"log/slog"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// dashboardService implements the DashboardSvcFacade interface.
// Every metric is a fold over a snapshot of the relevant collection;
// nothing is cached between calls.
type dashboardService struct {
	BaseService
	txnRepo      portsrepo.TransactionReader
	stockRepo    portsrepo.StockReader
	borrowRepo   portsrepo.BorrowReader
	customerRepo portsrepo.CustomerReader
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	txnRepo portsrepo.TransactionReader,
	stockRepo portsrepo.StockReader,
	borrowRepo portsrepo.BorrowReader,
	customerRepo portsrepo.CustomerReader,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		txnRepo:      txnRepo,
		stockRepo:    stockRepo,
		borrowRepo:   borrowRepo,
		customerRepo: customerRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for summary")
		return nil, err
	}
	items, err := s.stockRepo.FindStockItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load stock items for summary")
		return nil, err
	}
	borrows, err := s.borrowRepo.FindBorrows(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load borrow records for summary")
		return nil, err
	}
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customers for summary")
		return nil, err
	}

	summary := &domain.DashboardSummary{
		LowStockItems: []domain.StockItem{},
	}

	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			summary.TotalRevenue = summary.TotalRevenue.Add(txn.Amount)
		case domain.Expense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
		}
	}
	summary.NetProfit = summary.TotalRevenue.Sub(summary.TotalExpenses)

	for _, item := range items {
		summary.TotalStockValue = summary.TotalStockValue.Add(item.Value())
		if item.IsLowStock() {
			summary.LowStockItems = append(summary.LowStockItems, item)
		}
	}

	for _, rec := range borrows {
		summary.TotalDebt = summary.TotalDebt.Add(rec.Outstanding())
	}
	// Outstanding never goes below zero per record, but guard the sum too.
	if summary.TotalDebt.IsNegative() {
		summary.TotalDebt = decimal.Zero
	}

	for _, c := range customers {
		summary.TotalCreditExtended = summary.TotalCreditExtended.Add(c.CreditUsed)
	}

	s.LogDebug(ctx, "Dashboard summary computed",
		slog.String("net_profit", summary.NetProfit.String()),
		slog.Int("low_stock_items", len(summary.LowStockItems)))
	return summary, nil
}
