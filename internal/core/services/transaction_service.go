package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// NewTransactionService creates a new ledger service
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: repo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		err := fmt.Errorf("transaction amount must be positive: %w", apperrors.ErrValidation)
		s.LogWarn(ctx, "Rejected non-positive transaction amount", slog.String("amount", req.Amount.String()))
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Date:          req.Date,
		AuditFields: domain.AuditFields{
			CreatedAt:     time.Now(),
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
