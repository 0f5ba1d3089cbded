// Package memory provides the in-memory repositories backing the shop's
// collections. Each repository owns its slice exclusively: collections are
// insertion-ordered, callers receive copies, and update/delete against a
// missing ID is a silent no-op rather than an error.
package memory

import (
	"context"
	"sync"

	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/apperrors"
	"github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/domain"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
)

// CustomerRepository holds the customer collection in memory.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []domain.Customer
}

// NewCustomerRepository creates an empty customer repository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

// SaveCustomer appends the customer to the end of the collection.
func (r *CustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers = append(r.customers, customer)
	return nil
}

// FindCustomerByID returns a copy of the matching customer.
func (r *CustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.customers {
		if r.customers[i].CustomerID == customerID {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// FindCustomers returns a snapshot of the collection in insertion order.
func (r *CustomerRepository) FindCustomers(ctx context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Customer(nil), r.customers...), nil
}

// UpdateCustomer replaces the matching record in place, keeping its
// position. A missing ID leaves the collection untouched.
func (r *CustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].CustomerID == customer.CustomerID {
			r.customers[i] = customer
			return nil
		}
	}
	return nil
}
