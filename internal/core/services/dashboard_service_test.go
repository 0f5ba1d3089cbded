package services_test

import (
	"context"
	"testing"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/adapters/store/memory"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// The dashboard tests run against the real in-memory repositories: the
// metrics are pure folds over collection snapshots and there is nothing
// worth mocking.
type DashboardServiceTestSuite struct {
	suite.Suite
	txns      *memory.TransactionRepository
	stock     *memory.StockRepository
	borrows   *memory.BorrowRepository
	customers *memory.CustomerRepository
	service   portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.txns = memory.NewTransactionRepository()
	suite.stock = memory.NewStockRepository()
	suite.borrows = memory.NewBorrowRepository()
	suite.customers = memory.NewCustomerRepository()
	suite.service = services.NewDashboardService(suite.txns, suite.stock, suite.borrows, suite.customers)
}

func (suite *DashboardServiceTestSuite) TestSummary_EmptyStore() {
	summary, err := suite.service.Summary(context.Background())

	suite.Require().NoError(err)
	suite.True(summary.TotalRevenue.IsZero())
	suite.True(summary.TotalExpenses.IsZero())
	suite.True(summary.NetProfit.IsZero())
	suite.True(summary.TotalStockValue.IsZero())
	suite.True(summary.TotalDebt.IsZero())
	suite.True(summary.TotalCreditExtended.IsZero())
	suite.NotNil(summary.LowStockItems)
	suite.Empty(summary.LowStockItems)
}

func (suite *DashboardServiceTestSuite) TestSummary_RevenueExpensesAndProfit() {
	ctx := context.Background()
	save := func(amount int64, typ domain.TransactionType) {
		suite.Require().NoError(suite.txns.SaveTransaction(ctx, domain.Transaction{
			TransactionID: "t-" + string(typ) + "-" + decimal.NewFromInt(amount).String(),
			Description:   "test",
			Amount:        decimal.NewFromInt(amount),
			Type:          typ,
			Date:          "2025-01-10",
		}))
	}
	save(500, domain.Income)
	save(250, domain.Income)
	save(300, domain.Expense)

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalRevenue.Equal(decimal.NewFromInt(750)))
	suite.True(summary.TotalExpenses.Equal(decimal.NewFromInt(300)))
	suite.True(summary.NetProfit.Equal(decimal.NewFromInt(450)))
	suite.True(summary.NetProfit.Equal(summary.TotalRevenue.Sub(summary.TotalExpenses)))
}

func (suite *DashboardServiceTestSuite) TestSummary_StockValueAndLowStock() {
	ctx := context.Background()
	suite.Require().NoError(suite.stock.SaveStockItem(ctx, domain.StockItem{
		StockItemID:       "s-1",
		Name:              "Sugar 1kg",
		Quantity:          10,
		Price:             decimal.NewFromInt(4500),
		LowStockThreshold: 5,
	}))
	suite.Require().NoError(suite.stock.SaveStockItem(ctx, domain.StockItem{
		StockItemID:       "s-2",
		Name:              "Cooking Oil 1L",
		Quantity:          2,
		Price:             decimal.NewFromInt(9000),
		LowStockThreshold: 5,
	}))

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	// 10*4500 + 2*9000
	suite.True(summary.TotalStockValue.Equal(decimal.NewFromInt(63000)))
	suite.Require().Len(summary.LowStockItems, 1)
	suite.Equal("s-2", summary.LowStockItems[0].StockItemID)
}

// Debt counts only the unpaid remainder of each borrow record, and an
// overpaid record contributes zero rather than a negative amount.
func (suite *DashboardServiceTestSuite) TestSummary_DebtIgnoresOverpayment() {
	ctx := context.Background()
	suite.Require().NoError(suite.borrows.SaveBorrow(ctx, domain.BorrowRecord{
		BorrowID:   "b-1",
		Lender:     "SACCO",
		Amount:     decimal.NewFromInt(100),
		AmountPaid: decimal.NewFromInt(40),
		Status:     domain.BorrowPartiallyPaid,
	}))
	suite.Require().NoError(suite.borrows.SaveBorrow(ctx, domain.BorrowRecord{
		BorrowID:   "b-2",
		Lender:     "SACCO",
		Amount:     decimal.NewFromInt(50),
		AmountPaid: decimal.NewFromInt(80),
		Status:     domain.BorrowPaid,
	}))

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalDebt.Equal(decimal.NewFromInt(60)), "got %s", summary.TotalDebt)
	suite.False(summary.TotalDebt.IsNegative())
}

func (suite *DashboardServiceTestSuite) TestSummary_CreditExtended() {
	ctx := context.Background()
	suite.Require().NoError(suite.customers.SaveCustomer(ctx, domain.Customer{
		CustomerID:  "c-1",
		Name:        "Alice",
		CreditLimit: decimal.NewFromInt(100000),
		CreditUsed:  decimal.NewFromInt(25000),
	}))
	suite.Require().NoError(suite.customers.SaveCustomer(ctx, domain.Customer{
		CustomerID:  "c-2",
		Name:        "Bob",
		CreditLimit: decimal.NewFromInt(50000),
		CreditUsed:  decimal.NewFromInt(10000),
	}))

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalCreditExtended.Equal(decimal.NewFromInt(35000)))
}

// Adding a transaction between reads changes the next summary; nothing
// is cached.
func (suite *DashboardServiceTestSuite) TestSummary_RecomputedOnEveryRead() {
	ctx := context.Background()

	first, err := suite.service.Summary(ctx)
	suite.Require().NoError(err)
	suite.True(first.TotalRevenue.IsZero())

	suite.Require().NoError(suite.txns.SaveTransaction(ctx, domain.Transaction{
		TransactionID: "t-1",
		Description:   "sale",
		Amount:        decimal.NewFromInt(1000),
		Type:          domain.Income,
		Date:          "2025-01-10",
	}))

	second, err := suite.service.Summary(ctx)
	suite.Require().NoError(err)
	suite.True(second.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(second.NetProfit.Equal(decimal.NewFromInt(1000)))
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
