package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// CustomerSvcFacade defines owner-scoped CRUD for customers.
type CustomerSvcFacade interface {
	// CreateCustomer persists a new customer under the given owner.
	CreateCustomer(ctx context.Context, ownerID string, req dto.CreateCustomerRequest) (*domain.Customer, error)

	// GetCustomerByID retrieves a customer; scoped actors only see their own.
	GetCustomerByID(ctx context.Context, customerID string, actorOwnerID string) (*domain.Customer, error)

	// ListCustomers retrieves the customers of an owner (all owners when empty).
	ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error)

	// UpdateCustomer applies partial updates to a customer.
	UpdateCustomer(ctx context.Context, customerID string, actorOwnerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error)

	// DeleteCustomer removes a customer that no document references.
	DeleteCustomer(ctx context.Context, customerID string, actorOwnerID string) error
}
