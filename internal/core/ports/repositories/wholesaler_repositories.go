package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// WholesalerReader defines read operations for wholesaler data
type WholesalerReader interface {
	// FindWholesalerByID retrieves a specific wholesaler by ID.
	FindWholesalerByID(ctx context.Context, wholesalerID string) (*domain.Wholesaler, error)

	// FindWholesalers retrieves all wholesalers in insertion order.
	FindWholesalers(ctx context.Context) ([]domain.Wholesaler, error)
}

// WholesalerWriter defines write operations for wholesaler data
type WholesalerWriter interface {
	// SaveWholesaler appends a new wholesaler to the roster.
	SaveWholesaler(ctx context.Context, w domain.Wholesaler) error

	// UpdateWholesaler replaces the wholesaler matching w.WholesalerID in place.
	// Missing IDs are a silent no-op.
	UpdateWholesaler(ctx context.Context, w domain.Wholesaler) error
}

// WholesalerRepositoryFacade combines all wholesaler repository interfaces
type WholesalerRepositoryFacade interface {
	WholesalerReader
	WholesalerWriter
}
