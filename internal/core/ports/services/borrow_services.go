package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// BorrowSvcFacade defines the operations available on borrow records.
// Status is derived on every write; callers never set it.
type BorrowSvcFacade interface {
	CreateBorrow(ctx context.Context, req dto.CreateBorrowRequest) (*domain.BorrowRecord, error)
	GetBorrowByID(ctx context.Context, borrowID string) (*domain.BorrowRecord, error)
	ListBorrows(ctx context.Context) ([]domain.BorrowRecord, error)
	UpdateBorrow(ctx context.Context, borrowID string, req dto.UpdateBorrowRequest) (*domain.BorrowRecord, error)
}
