package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// BorrowReader defines read operations for borrow records
type BorrowReader interface {
	// FindBorrowByID retrieves a specific borrow record by ID.
	FindBorrowByID(ctx context.Context, borrowID string) (*domain.BorrowRecord, error)

	// FindBorrows retrieves all borrow records in insertion order.
	FindBorrows(ctx context.Context) ([]domain.BorrowRecord, error)
}

// BorrowWriter defines write operations for borrow records
type BorrowWriter interface {
	// SaveBorrow appends a new borrow record to the collection.
	SaveBorrow(ctx context.Context, rec domain.BorrowRecord) error

	// UpdateBorrow replaces the record matching rec.BorrowID in place.
	// Missing IDs are a silent no-op.
	UpdateBorrow(ctx context.Context, rec domain.BorrowRecord) error
}

// BorrowRepositoryFacade combines all borrow-related repository interfaces
type BorrowRepositoryFacade interface {
	BorrowReader
	BorrowWriter
}
