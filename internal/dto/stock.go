package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateStockItemRequest defines the data needed to add a stock item.
type CreateStockItemRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category"`
	Quantity          int64           `json:"quantity" binding:"gte=0"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"lowStockThreshold" binding:"gte=0"`
}

// UpdateStockItemRequest carries the full edited record.
type UpdateStockItemRequest struct {
	Name              string          `json:"name" binding:"required"`
	Category          string          `json:"category"`
	Quantity          int64           `json:"quantity" binding:"gte=0"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"lowStockThreshold" binding:"gte=0"`
}

// StockItemResponse defines the data returned for a stock item.
// LowStock is the derived predicate, included so clients never recompute it.
type StockItemResponse struct {
	StockItemID       string          `json:"stockItemID"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Quantity          int64           `json:"quantity"`
	Price             decimal.Decimal `json:"price"`
	LowStockThreshold int64           `json:"lowStockThreshold"`
	LowStock          bool            `json:"lowStock"`
	CreatedAt         time.Time       `json:"createdAt"`
	LastUpdatedAt     time.Time       `json:"lastUpdatedAt"`
}

// ToStockItemResponse converts a domain.StockItem to StockItemResponse DTO
func ToStockItemResponse(s *domain.StockItem) StockItemResponse {
	return StockItemResponse{
		StockItemID:       s.StockItemID,
		Name:              s.Name,
		Category:          s.Category,
		Quantity:          s.Quantity,
		Price:             s.Price,
		LowStockThreshold: s.LowStockThreshold,
		LowStock:          s.IsLowStock(),
		CreatedAt:         s.CreatedAt,
		LastUpdatedAt:     s.LastUpdatedAt,
	}
}

// ListStockItemsResponse wraps the stock collection snapshot.
type ListStockItemsResponse struct {
	StockItems []StockItemResponse `json:"stockItems"`
}

// ToListStockItemsResponse converts a collection snapshot to its DTO form.
func ToListStockItemsResponse(items []domain.StockItem) ListStockItemsResponse {
	res := make([]StockItemResponse, len(items))
	for i, s := range items {
		res[i] = ToStockItemResponse(&s)
	}
	return ListStockItemsResponse{StockItems: res}
}
