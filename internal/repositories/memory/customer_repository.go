package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
)

type CustomerRepository struct {
	mu        sync.Mutex
	customers map[string]domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[string]domain.Customer)}
}

var _ portsrepo.CustomerRepositoryFacade = (*CustomerRepository)(nil)

func (r *CustomerRepository) SaveCustomer(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.CustomerID]; exists {
		return apperrors.ErrDuplicate
	}
	r.customers[customer.CustomerID] = customer
	return nil
}

func (r *CustomerRepository) FindCustomerByID(_ context.Context, customerID string) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.customers[customerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	customer := stored
	return &customer, nil
}

func (r *CustomerRepository) ListCustomersByOwner(_ context.Context, ownerID string) ([]domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	customers := make([]domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		if ownerID == "" || c.OwnerID == ownerID {
			customers = append(customers, c)
		}
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].Name < customers[j].Name })
	return customers, nil
}

func (r *CustomerRepository) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customer.CustomerID]; !ok {
		return apperrors.ErrNotFound
	}
	r.customers[customer.CustomerID] = customer
	return nil
}

func (r *CustomerRepository) DeleteCustomer(_ context.Context, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.customers[customerID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.customers, customerID)
	return nil
}
