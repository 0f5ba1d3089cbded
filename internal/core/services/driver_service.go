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

// driverService implements the DriverSvcFacade interface
type driverService struct {
	BaseService
	driverRepo portsrepo.DriverRepositoryFacade
}

// NewDriverService creates a new boda driver service
func NewDriverService(repo portsrepo.DriverRepositoryFacade) portssvc.DriverSvcFacade {
	return &driverService{driverRepo: repo}
}

var _ portssvc.DriverSvcFacade = (*driverService)(nil)

func (s *driverService) CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.BodaDriver, error) {
	now := time.Now()
	d := domain.BodaDriver{
		DriverID:  uuid.NewString(),
		Name:      req.Name,
		Phone:     req.Phone,
		Available: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.driverRepo.SaveDriver(ctx, d); err != nil {
		s.LogError(ctx, err, "Failed to save driver", slog.String("driver_id", d.DriverID))
		return nil, err
	}

	s.LogInfo(ctx, "Driver created successfully", slog.String("driver_id", d.DriverID))
	return &d, nil
}

func (s *driverService) GetDriverByID(ctx context.Context, driverID string) (*domain.BodaDriver, error) {
	d, err := s.driverRepo.FindDriverByID(ctx, driverID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find driver by ID", slog.String("driver_id", driverID))
		}
		return nil, err
	}
	return d, nil
}

func (s *driverService) ListDrivers(ctx context.Context) ([]domain.BodaDriver, error) {
	ds, err := s.driverRepo.FindDrivers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list drivers")
		return nil, err
	}
	if ds == nil {
		return []domain.BodaDriver{}, nil
	}
	return ds, nil
}

func (s *driverService) UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest) (*domain.BodaDriver, error) {
	existing, err := s.driverRepo.FindDriverByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	updated := domain.BodaDriver{
		DriverID:  existing.DriverID,
		Name:      req.Name,
		Phone:     req.Phone,
		Available: *req.Available,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.driverRepo.UpdateDriver(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update driver", slog.String("driver_id", driverID))
		return nil, err
	}

	s.LogInfo(ctx, "Driver updated successfully",
		slog.String("driver_id", driverID),
		slog.Bool("available", updated.Available))
	return &updated, nil
}
