package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// DriverReader defines read operations for boda driver data
type DriverReader interface {
	// FindDriverByID retrieves a specific driver by ID.
	FindDriverByID(ctx context.Context, driverID string) (*domain.BodaDriver, error)

	// FindDrivers retrieves all drivers in insertion order.
	FindDrivers(ctx context.Context) ([]domain.BodaDriver, error)
}

// DriverWriter defines write operations for boda driver data
type DriverWriter interface {
	// SaveDriver appends a new driver to the roster.
	SaveDriver(ctx context.Context, d domain.BodaDriver) error

	// UpdateDriver replaces the driver matching d.DriverID in place.
	// Missing IDs are a silent no-op.
	UpdateDriver(ctx context.Context, d domain.BodaDriver) error
}

// DriverRepositoryFacade combines all driver repository interfaces
type DriverRepositoryFacade interface {
	DriverReader
	DriverWriter
}
