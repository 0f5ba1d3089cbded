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
)

// customerService implements the CustomerSvcFacade interface
type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new customer service
func NewCustomerService(repo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: repo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	if req.CreditLimit.IsNegative() || req.CreditUsed.IsNegative() {
		err := fmt.Errorf("credit fields must not be negative: %w", apperrors.ErrValidation)
		s.LogWarn(ctx, "Rejected customer with negative credit fields", slog.String("name", req.Name))
		return nil, err
	}

	now := time.Now()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        req.Name,
		Phone:       req.Phone,
		CreditLimit: req.CreditLimit,
		CreditUsed:  req.CreditUsed,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer by ID", slog.String("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customerRepo.FindCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	if customers == nil {
		return []domain.Customer{}, nil
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	if req.CreditLimit.IsNegative() || req.CreditUsed.IsNegative() {
		return nil, fmt.Errorf("credit fields must not be negative: %w", apperrors.ErrValidation)
	}

	existing, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	updated := domain.Customer{
		CustomerID:  existing.CustomerID,
		Name:        req.Name,
		Phone:       req.Phone,
		CreditLimit: req.CreditLimit,
		CreditUsed:  req.CreditUsed,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.customerRepo.UpdateCustomer(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update customer", slog.String("customer_id", customerID))
		return nil, err
	}

	s.LogInfo(ctx, "Customer updated successfully", slog.String("customer_id", customerID))
	return &updated, nil
}
