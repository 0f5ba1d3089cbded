package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// DashboardSvcFacade computes the derived financial metrics.
type DashboardSvcFacade interface {
	// Summary recomputes every aggregate metric from the current collections.
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}
