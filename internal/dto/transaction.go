package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=Income Expense"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Type          domain.TransactionType `json:"type"`
	Date          string                 `json:"date"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Description:   t.Description,
		Amount:        t.Amount,
		Type:          t.Type,
		Date:          t.Date,
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsResponse wraps the ledger snapshot.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a ledger snapshot to its DTO form.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: res}
}
