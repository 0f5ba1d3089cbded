package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// CreateDriverRequest defines the data needed to add a boda driver.
// Availability is server-assigned (true) on creation.
type CreateDriverRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// UpdateDriverRequest carries the full edited record, including the
// availability toggle.
type UpdateDriverRequest struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Available *bool  `json:"available" binding:"required"`
}

// DriverResponse defines the data returned for a boda driver.
type DriverResponse struct {
	DriverID      string    `json:"driverID"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToDriverResponse converts a domain.BodaDriver to DriverResponse DTO
func ToDriverResponse(d *domain.BodaDriver) DriverResponse {
	return DriverResponse{
		DriverID:      d.DriverID,
		Name:          d.Name,
		Phone:         d.Phone,
		Available:     d.Available,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ListDriversResponse wraps the driver roster snapshot.
type ListDriversResponse struct {
	Drivers []DriverResponse `json:"drivers"`
}

// ToListDriversResponse converts a roster snapshot to its DTO form.
func ToListDriversResponse(ds []domain.BodaDriver) ListDriversResponse {
	res := make([]DriverResponse, len(ds))
	for i, d := range ds {
		res[i] = ToDriverResponse(&d)
	}
	return ListDriversResponse{Drivers: res}
}
