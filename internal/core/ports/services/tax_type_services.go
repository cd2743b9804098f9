package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// TaxTypeSvcFacade defines owner-scoped CRUD for the tax type catalog.
type TaxTypeSvcFacade interface {
	// CreateTaxType persists a new tax type under the given owner.
	CreateTaxType(ctx context.Context, ownerID string, req dto.CreateTaxTypeRequest) (*domain.TaxType, error)

	// GetTaxTypeByID retrieves a tax type; scoped actors only see their own.
	GetTaxTypeByID(ctx context.Context, taxTypeID string, actorOwnerID string) (*domain.TaxType, error)

	// ListTaxTypes retrieves the tax types of an owner (all owners when empty).
	ListTaxTypes(ctx context.Context, ownerID string) ([]domain.TaxType, error)

	// UpdateTaxType applies partial updates to a tax type.
	UpdateTaxType(ctx context.Context, taxTypeID string, actorOwnerID string, req dto.UpdateTaxTypeRequest) (*domain.TaxType, error)

	// DeleteTaxType removes a tax type. Document lines copied the rate, so
	// no reference check is needed.
	DeleteTaxType(ctx context.Context, taxTypeID string, actorOwnerID string) error
}
