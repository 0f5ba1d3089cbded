package memory

import (
	"context"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// TransactionRepository holds the append-only ledger in memory.
type TransactionRepository struct {
	mu   sync.RWMutex
	txns []domain.Transaction
}

// NewTransactionRepository creates an empty ledger repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction appends the transaction to the end of the ledger.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txns = append(r.txns, txn)
	return nil
}

// FindTransactions returns a snapshot of the ledger in insertion order.
func (r *TransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Transaction(nil), r.txns...), nil
}
