package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// DriverSvcFacade defines the operations available on the boda driver roster.
type DriverSvcFacade interface {
	CreateDriver(ctx context.Context, req dto.CreateDriverRequest) (*domain.BodaDriver, error)
	GetDriverByID(ctx context.Context, driverID string) (*domain.BodaDriver, error)
	ListDrivers(ctx context.Context) ([]domain.BodaDriver, error)
	UpdateDriver(ctx context.Context, driverID string, req dto.UpdateDriverRequest) (*domain.BodaDriver, error)
}
