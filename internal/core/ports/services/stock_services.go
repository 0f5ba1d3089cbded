package services

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
)

// StockSvcFacade defines the operations available on the stock collection.
// Stock is the only entity that supports deletion.
type StockSvcFacade interface {
	CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*domain.StockItem, error)
	GetStockItemByID(ctx context.Context, stockItemID string) (*domain.StockItem, error)
	ListStockItems(ctx context.Context) ([]domain.StockItem, error)
	UpdateStockItem(ctx context.Context, stockItemID string, req dto.UpdateStockItemRequest) (*domain.StockItem, error)
	DeleteStockItem(ctx context.Context, stockItemID string) error
}
