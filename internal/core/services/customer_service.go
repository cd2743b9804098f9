package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
	"github.com/financeflow/financeflow_app/internal/dto"
	"github.com/financeflow/financeflow_app/internal/platform/logging"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	documentRepo portsrepo.DocumentReader
}

// NewCustomerService creates a new CustomerService. The document reader is
// needed to refuse deleting a customer that documents still reference.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, documentRepo portsrepo.DocumentReader) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, documentRepo: documentRepo}
}

// Ensure customerService implements the portssvc.CustomerSvcFacade interface
var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, ownerID string, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		OwnerID:    ownerID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Error("Failed to save customer", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	logger.Info("Customer created successfully", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// loadOwnedCustomer applies the ownership scope: a scoped actor's mismatch is
// reported as not found.
func (s *customerService) loadOwnedCustomer(ctx context.Context, customerID string, actorOwnerID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if actorOwnerID != "" && customer.OwnerID != actorOwnerID {
		// Obscure existence
		return nil, apperrors.ErrNotFound
	}
	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string, actorOwnerID string) (*domain.Customer, error) {
	return s.loadOwnedCustomer(ctx, customerID, actorOwnerID)
}

func (s *customerService) ListCustomers(ctx context.Context, ownerID string) ([]domain.Customer, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	customers, err := s.customerRepo.ListCustomersByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list customers", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, actorOwnerID string, req dto.UpdateCustomerRequest) (*domain.Customer, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	customer, err := s.loadOwnedCustomer(ctx, customerID, actorOwnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: customer name cannot be empty", apperrors.ErrValidation)
		}
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	customer.LastUpdatedAt = time.Now().UTC()
	if actorOwnerID != "" {
		customer.LastUpdatedBy = actorOwnerID
	}

	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		logger.Error("Failed to update customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	logger.Info("Customer updated successfully", slog.String("customer_id", customerID))
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string, actorOwnerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.loadOwnedCustomer(ctx, customerID, actorOwnerID); err != nil {
		return err
	}

	count, err := s.documentRepo.CountDocumentsByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("Failed to count documents for customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return fmt.Errorf("failed to check customer references: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: customer %s is referenced by %d document(s)", apperrors.ErrConflict, customerID, count)
	}

	if err := s.customerRepo.DeleteCustomer(ctx, customerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete customer", slog.String("error", err.Error()), slog.String("customer_id", customerID))
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	logger.Info("Customer deleted successfully", slog.String("customer_id", customerID))
	return nil
}
