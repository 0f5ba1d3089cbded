package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// TransactionSvcFacade defines the operations available on the ledger.
// Transactions are append-only, so there is no update or delete.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
