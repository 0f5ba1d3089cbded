package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "Income"
	Expense TransactionType = "Expense"
)

// Transaction is a single ledger entry. Transactions are append-only:
// once recorded they are never updated or deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"` // positive value
	Type          TransactionType `json:"type"`   // Income or Expense
	Date          string          `json:"date"`   // calendar date, DateLayout
	AuditFields
}
