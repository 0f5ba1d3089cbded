package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// borrowService implements the BorrowSvcFacade interface
type borrowService struct {
	BaseService
	borrowRepo portsrepo.BorrowRepositoryFacade
}

// NewBorrowService creates a new borrow service
func NewBorrowService(repo portsrepo.BorrowRepositoryFacade) portssvc.BorrowSvcFacade {
	return &borrowService{borrowRepo: repo}
}

var _ portssvc.BorrowSvcFacade = (*borrowService)(nil)

func (s *borrowService) CreateBorrow(ctx context.Context, req dto.CreateBorrowRequest) (*domain.BorrowRecord, error) {
	if !req.Amount.IsPositive() {
		err := fmt.Errorf("borrow amount must be positive: %w", apperrors.ErrValidation)
		s.LogWarn(ctx, "Rejected non-positive borrow amount", slog.String("amount", req.Amount.String()))
		return nil, err
	}

	now := time.Now()
	rec := domain.BorrowRecord{
		BorrowID:   uuid.NewString(),
		Lender:     req.Lender,
		Amount:     req.Amount,
		AmountPaid: decimal.Zero,
		Date:       req.Date,
		DueDate:    req.DueDate,
		Status:     domain.BorrowUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.borrowRepo.SaveBorrow(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save borrow record", slog.String("borrow_id", rec.BorrowID))
		return nil, err
	}

	s.LogInfo(ctx, "Borrow record created successfully",
		slog.String("borrow_id", rec.BorrowID),
		slog.String("lender", rec.Lender))
	return &rec, nil
}

func (s *borrowService) GetBorrowByID(ctx context.Context, borrowID string) (*domain.BorrowRecord, error) {
	rec, err := s.borrowRepo.FindBorrowByID(ctx, borrowID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find borrow record by ID", slog.String("borrow_id", borrowID))
		}
		return nil, err
	}
	return rec, nil
}

func (s *borrowService) ListBorrows(ctx context.Context) ([]domain.BorrowRecord, error) {
	recs, err := s.borrowRepo.FindBorrows(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list borrow records")
		return nil, err
	}
	if recs == nil {
		return []domain.BorrowRecord{}, nil
	}
	return recs, nil
}

// UpdateBorrow replaces the record and recomputes its status from the paid
// amount. Whatever status the caller supplied is discarded.
func (s *borrowService) UpdateBorrow(ctx context.Context, borrowID string, req dto.UpdateBorrowRequest) (*domain.BorrowRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("borrow amount must be positive: %w", apperrors.ErrValidation)
	}
	if req.AmountPaid.IsNegative() {
		return nil, fmt.Errorf("amount paid must not be negative: %w", apperrors.ErrValidation)
	}

	existing, err := s.borrowRepo.FindBorrowByID(ctx, borrowID)
	if err != nil {
		return nil, err
	}

	updated := domain.BorrowRecord{
		BorrowID:   existing.BorrowID,
		Lender:     req.Lender,
		Amount:     req.Amount,
		AmountPaid: req.AmountPaid,
		Date:       req.Date,
		DueDate:    req.DueDate,
		Status:     domain.BorrowStatusFor(req.Amount, req.AmountPaid),
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.borrowRepo.UpdateBorrow(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update borrow record", slog.String("borrow_id", borrowID))
		return nil, err
	}

	s.LogInfo(ctx, "Borrow record updated successfully",
		slog.String("borrow_id", borrowID),
		slog.String("status", string(updated.Status)))
	return &updated, nil
}
