package repositories

import (
	"context"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a specific customer by ID.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// FindCustomers retrieves all customers in insertion order.
	FindCustomers(ctx context.Context) ([]domain.Customer, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer appends a new customer to the collection.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer replaces the customer matching customer.CustomerID in
	// place, preserving its position. Missing IDs are a silent no-op.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
