package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// StockReader defines read operations for stock data
type StockReader interface {
	// FindStockItemByID retrieves a specific stock item by ID.
	FindStockItemByID(ctx context.Context, stockItemID string) (*domain.StockItem, error)

	// FindStockItems retrieves all stock items in insertion order.
	FindStockItems(ctx context.Context) ([]domain.StockItem, error)
}

// StockWriter defines write operations for stock data
type StockWriter interface {
	// SaveStockItem appends a new stock item to the collection.
	SaveStockItem(ctx context.Context, item domain.StockItem) error

	// UpdateStockItem replaces the item matching item.StockItemID in place.
	// Missing IDs are a silent no-op.
	UpdateStockItem(ctx context.Context, item domain.StockItem) error

	// DeleteStockItem removes the item with the given ID.
	// Missing IDs are a silent no-op.
	DeleteStockItem(ctx context.Context, stockItemID string) error
}

// StockRepositoryFacade combines all stock-related repository interfaces
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}
