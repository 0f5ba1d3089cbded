package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// WholesalerSvcFacade defines the operations available on the wholesaler roster.
type WholesalerSvcFacade interface {
	CreateWholesaler(ctx context.Context, req dto.CreateWholesalerRequest) (*domain.Wholesaler, error)
	GetWholesalerByID(ctx context.Context, wholesalerID string) (*domain.Wholesaler, error)
	ListWholesalers(ctx context.Context) ([]domain.Wholesaler, error)
	UpdateWholesaler(ctx context.Context, wholesalerID string, req dto.UpdateWholesalerRequest) (*domain.Wholesaler, error)
}
