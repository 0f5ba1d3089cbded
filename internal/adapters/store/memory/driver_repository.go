package memory

import (
	"context"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// DriverRepository holds the boda driver roster in memory.
type DriverRepository struct {
	mu      sync.RWMutex
	drivers []domain.BodaDriver
}

// NewDriverRepository creates an empty driver repository.
func NewDriverRepository() *DriverRepository {
	return &DriverRepository{}
}

var _ portsrepo.DriverRepositoryFacade = (*DriverRepository)(nil)

// SaveDriver appends the driver to the end of the roster.
func (r *DriverRepository) SaveDriver(ctx context.Context, d domain.BodaDriver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = append(r.drivers, d)
	return nil
}

// FindDriverByID returns a copy of the matching driver.
func (r *DriverRepository) FindDriverByID(ctx context.Context, driverID string) (*domain.BodaDriver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.drivers {
		if r.drivers[i].DriverID == driverID {
			d := r.drivers[i]
			return &d, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindDrivers returns a snapshot of the roster in insertion order.
func (r *DriverRepository) FindDrivers(ctx context.Context) ([]domain.BodaDriver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.BodaDriver(nil), r.drivers...), nil
}

// UpdateDriver replaces the matching record in place, keeping its position.
// A missing ID leaves the roster untouched.
func (r *DriverRepository) UpdateDriver(ctx context.Context, d domain.BodaDriver) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.drivers {
		if r.drivers[i].DriverID == d.DriverID {
			r.drivers[i] = d
			return nil
		}
	}
	return nil
}
