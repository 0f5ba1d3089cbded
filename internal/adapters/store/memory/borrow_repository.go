package memory

import (
	"context"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// BorrowRepository holds the borrow records in memory.
type BorrowRepository struct {
	mu      sync.RWMutex
	borrows []domain.BorrowRecord
}

// NewBorrowRepository creates an empty borrow repository.
func NewBorrowRepository() *BorrowRepository {
	return &BorrowRepository{}
}

var _ portsrepo.BorrowRepositoryFacade = (*BorrowRepository)(nil)

// SaveBorrow appends the record to the end of the collection.
func (r *BorrowRepository) SaveBorrow(ctx context.Context, rec domain.BorrowRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.borrows = append(r.borrows, rec)
	return nil
}

// FindBorrowByID returns a copy of the matching record.
func (r *BorrowRepository) FindBorrowByID(ctx context.Context, borrowID string) (*domain.BorrowRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.borrows {
		if r.borrows[i].BorrowID == borrowID {
			rec := r.borrows[i]
			return &rec, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindBorrows returns a snapshot of the collection in insertion order.
func (r *BorrowRepository) FindBorrows(ctx context.Context) ([]domain.BorrowRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.BorrowRecord(nil), r.borrows...), nil
}

// UpdateBorrow replaces the matching record in place, keeping its position.
// A missing ID leaves the collection untouched.
func (r *BorrowRepository) UpdateBorrow(ctx context.Context, rec domain.BorrowRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.borrows {
		if r.borrows[i].BorrowID == rec.BorrowID {
			r.borrows[i] = rec
			return nil
		}
	}
	return nil
}
