package memory

import (
	"context"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// WholesalerRepository holds the wholesaler roster in memory.
type WholesalerRepository struct {
	mu          sync.RWMutex
	wholesalers []domain.Wholesaler
}

// NewWholesalerRepository creates an empty wholesaler repository.
func NewWholesalerRepository() *WholesalerRepository {
	return &WholesalerRepository{}
}

var _ portsrepo.WholesalerRepositoryFacade = (*WholesalerRepository)(nil)

// SaveWholesaler appends the wholesaler to the end of the roster.
func (r *WholesalerRepository) SaveWholesaler(ctx context.Context, w domain.Wholesaler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.wholesalers = append(r.wholesalers, w)
	return nil
}

// FindWholesalerByID returns a copy of the matching wholesaler.
func (r *WholesalerRepository) FindWholesalerByID(ctx context.Context, wholesalerID string) (*domain.Wholesaler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.wholesalers {
		if r.wholesalers[i].WholesalerID == wholesalerID {
			w := r.wholesalers[i]
			return &w, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindWholesalers returns a snapshot of the roster in insertion order.
func (r *WholesalerRepository) FindWholesalers(ctx context.Context) ([]domain.Wholesaler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Wholesaler(nil), r.wholesalers...), nil
}

// UpdateWholesaler replaces the matching record in place, keeping its
// position. A missing ID leaves the roster untouched.
func (r *WholesalerRepository) UpdateWholesaler(ctx context.Context, w domain.Wholesaler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.wholesalers {
		if r.wholesalers[i].WholesalerID == w.WholesalerID {
			r.wholesalers[i] = w
			return nil
		}
	}
	return nil
}
