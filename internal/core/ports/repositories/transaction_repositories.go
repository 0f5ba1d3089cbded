package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// TransactionReader defines read operations for ledger data
type TransactionReader interface {
	// FindTransactions retrieves all transactions in insertion order.
	FindTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger data.
// The ledger is append-only: there is deliberately no update or delete.
type TransactionWriter interface {
	// SaveTransaction appends a new transaction to the ledger.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
