package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/google/uuid"
)

// wholesalerService implements the WholesalerSvcFacade interface
type wholesalerService struct {
	BaseService
	wholesalerRepo portsrepo.WholesalerRepositoryFacade
}

// NewWholesalerService creates a new wholesaler service
func NewWholesalerService(repo portsrepo.WholesalerRepositoryFacade) portssvc.WholesalerSvcFacade {
	return &wholesalerService{wholesalerRepo: repo}
}

var _ portssvc.WholesalerSvcFacade = (*wholesalerService)(nil)

func (s *wholesalerService) CreateWholesaler(ctx context.Context, req dto.CreateWholesalerRequest) (*domain.Wholesaler, error) {
	now := time.Now()
	w := domain.Wholesaler{
		WholesalerID:    uuid.NewString(),
		Name:            req.Name,
		Contact:         req.Contact,
		ProductCategory: req.ProductCategory,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.wholesalerRepo.SaveWholesaler(ctx, w); err != nil {
		s.LogError(ctx, err, "Failed to save wholesaler", slog.String("wholesaler_id", w.WholesalerID))
		return nil, err
	}

	s.LogInfo(ctx, "Wholesaler created successfully", slog.String("wholesaler_id", w.WholesalerID))
	return &w, nil
}

func (s *wholesalerService) GetWholesalerByID(ctx context.Context, wholesalerID string) (*domain.Wholesaler, error) {
	w, err := s.wholesalerRepo.FindWholesalerByID(ctx, wholesalerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find wholesaler by ID", slog.String("wholesaler_id", wholesalerID))
		}
		return nil, err
	}
	return w, nil
}

func (s *wholesalerService) ListWholesalers(ctx context.Context) ([]domain.Wholesaler, error) {
	ws, err := s.wholesalerRepo.FindWholesalers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wholesalers")
		return nil, err
	}
	if ws == nil {
		return []domain.Wholesaler{}, nil
	}
	return ws, nil
}

func (s *wholesalerService) UpdateWholesaler(ctx context.Context, wholesalerID string, req dto.UpdateWholesalerRequest) (*domain.Wholesaler, error) {
	existing, err := s.wholesalerRepo.FindWholesalerByID(ctx, wholesalerID)
	if err != nil {
		return nil, err
	}

	updated := domain.Wholesaler{
		WholesalerID:    existing.WholesalerID,
		Name:            req.Name,
		Contact:         req.Contact,
		ProductCategory: req.ProductCategory,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.wholesalerRepo.UpdateWholesaler(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update wholesaler", slog.String("wholesaler_id", wholesalerID))
		return nil, err
	}

	s.LogInfo(ctx, "Wholesaler updated successfully", slog.String("wholesaler_id", wholesalerID))
	return &updated, nil
}
