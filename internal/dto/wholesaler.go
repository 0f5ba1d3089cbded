package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// CreateWholesalerRequest defines the data needed to add a wholesaler.
type CreateWholesalerRequest struct {
	Name            string `json:"name" binding:"required"`
	Contact         string `json:"contact"`
	ProductCategory string `json:"productCategory"`
}

// UpdateWholesalerRequest carries the full edited record.
type UpdateWholesalerRequest struct {
	Name            string `json:"name" binding:"required"`
	Contact         string `json:"contact"`
	ProductCategory string `json:"productCategory"`
}

// WholesalerResponse defines the data returned for a wholesaler.
type WholesalerResponse struct {
	WholesalerID    string    `json:"wholesalerID"`
	Name            string    `json:"name"`
	Contact         string    `json:"contact"`
	ProductCategory string    `json:"productCategory"`
	CreatedAt       time.Time `json:"createdAt"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// ToWholesalerResponse converts a domain.Wholesaler to WholesalerResponse DTO
func ToWholesalerResponse(w *domain.Wholesaler) WholesalerResponse {
	return WholesalerResponse{
		WholesalerID:    w.WholesalerID,
		Name:            w.Name,
		Contact:         w.Contact,
		ProductCategory: w.ProductCategory,
		CreatedAt:       w.CreatedAt,
		LastUpdatedAt:   w.LastUpdatedAt,
	}
}

// ListWholesalersResponse wraps the wholesaler roster snapshot.
type ListWholesalersResponse struct {
	Wholesalers []WholesalerResponse `json:"wholesalers"`
}

// ToListWholesalersResponse converts a roster snapshot to its DTO form.
func ToListWholesalersResponse(ws []domain.Wholesaler) ListWholesalersResponse {
	res := make([]WholesalerResponse, len(ws))
	for i, w := range ws {
		res[i] = ToWholesalerResponse(&w)
	}
	return ListWholesalersResponse{Wholesalers: res}
}
