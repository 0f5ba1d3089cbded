package dto

import (
	"time"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest defines the data needed to add a customer.
// CreditUsed is accepted here because the dashboard edits it explicitly;
// it is never derived from transactions or borrows.
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CreditUsed  decimal.Decimal `json:"creditUsed"`
}

// UpdateCustomerRequest carries the full edited record, matching the
// dashboard's edit form which always submits every field.
type UpdateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
	CreditUsed  decimal.Decimal `json:"creditUsed"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID    string          `json:"customerID"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	CreditUsed    decimal.Decimal `json:"creditUsed"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse DTO
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:    c.CustomerID,
		Name:          c.Name,
		Phone:         c.Phone,
		CreditLimit:   c.CreditLimit,
		CreditUsed:    c.CreditUsed,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ListCustomersResponse wraps the customer collection snapshot.
type ListCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// ToListCustomersResponse converts a collection snapshot to its DTO form.
func ToListCustomersResponse(customers []domain.Customer) ListCustomersResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(&c)
	}
	return ListCustomersResponse{Customers: res}
}
