package memory

import (
	"context"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// StockRepository holds the stock collection in memory.
type StockRepository struct {
	mu    sync.RWMutex
	items []domain.StockItem
}

// NewStockRepository creates an empty stock repository.
func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

var _ portsrepo.StockRepositoryFacade = (*StockRepository)(nil)

// SaveStockItem appends the item to the end of the collection.
func (r *StockRepository) SaveStockItem(ctx context.Context, item domain.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, item)
	return nil
}

// FindStockItemByID returns a copy of the matching item.
func (r *StockRepository) FindStockItemByID(ctx context.Context, stockItemID string) (*domain.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].StockItemID == stockItemID {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindStockItems returns a snapshot of the collection in insertion order.
func (r *StockRepository) FindStockItems(ctx context.Context) ([]domain.StockItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.StockItem(nil), r.items...), nil
}

// UpdateStockItem replaces the matching record in place, keeping its
// position. A missing ID leaves the collection untouched.
func (r *StockRepository) UpdateStockItem(ctx context.Context, item domain.StockItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].StockItemID == item.StockItemID {
			r.items[i] = item
			return nil
		}
	}
	return nil
}

// DeleteStockItem removes the matching record. A missing ID leaves the
// collection untouched.
func (r *StockRepository) DeleteStockItem(ctx context.Context, stockItemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].StockItemID == stockItemID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}
