package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/dto"
	"github.com/google/uuid"
)

// stockService implements the StockSvcFacade interface
type stockService struct {
	BaseService
	stockRepo portsrepo.StockRepositoryFacade
}

// NewStockService creates a new stock service
func NewStockService(repo portsrepo.StockRepositoryFacade) portssvc.StockSvcFacade {
	return &stockService{stockRepo: repo}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

func (s *stockService) CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest) (*domain.StockItem, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	item := domain.StockItem{
		StockItemID:       uuid.NewString(),
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.stockRepo.SaveStockItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save stock item", slog.String("stock_item_id", item.StockItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Stock item created successfully",
		slog.String("stock_item_id", item.StockItemID),
		slog.String("name", item.Name))
	return &item, nil
}

func (s *stockService) GetStockItemByID(ctx context.Context, stockItemID string) (*domain.StockItem, error) {
	item, err := s.stockRepo.FindStockItemByID(ctx, stockItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find stock item by ID", slog.String("stock_item_id", stockItemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *stockService) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	items, err := s.stockRepo.FindStockItems(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock items")
		return nil, err
	}
	if items == nil {
		return []domain.StockItem{}, nil
	}
	return items, nil
}

func (s *stockService) UpdateStockItem(ctx context.Context, stockItemID string, req dto.UpdateStockItemRequest) (*domain.StockItem, error) {
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative: %w", apperrors.ErrValidation)
	}

	existing, err := s.stockRepo.FindStockItemByID(ctx, stockItemID)
	if err != nil {
		return nil, err
	}

	updated := domain.StockItem{
		StockItemID:       existing.StockItemID,
		Name:              req.Name,
		Category:          req.Category,
		Quantity:          req.Quantity,
		Price:             req.Price,
		LowStockThreshold: req.LowStockThreshold,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			LastUpdatedAt: time.Now(),
		},
	}

	if err := s.stockRepo.UpdateStockItem(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update stock item", slog.String("stock_item_id", stockItemID))
		return nil, err
	}

	if updated.IsLowStock() {
		s.LogWarn(ctx, "Stock item at or below its low-stock threshold",
			slog.String("stock_item_id", stockItemID),
			slog.String("name", updated.Name),
			slog.Int64("quantity", updated.Quantity),
			slog.Int64("threshold", updated.LowStockThreshold))
	}

	s.LogInfo(ctx, "Stock item updated successfully", slog.String("stock_item_id", stockItemID))
	return &updated, nil
}

func (s *stockService) DeleteStockItem(ctx context.Context, stockItemID string) error {
	// Existence check so the handler can report 404; the repository delete
	// itself never fails on a missing ID.
	if _, err := s.stockRepo.FindStockItemByID(ctx, stockItemID); err != nil {
		return err
	}

	if err := s.stockRepo.DeleteStockItem(ctx, stockItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete stock item", slog.String("stock_item_id", stockItemID))
		return err
	}

	s.LogInfo(ctx, "Stock item deleted successfully", slog.String("stock_item_id", stockItemID))
	return nil
}
