package repositories

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// TaxTypeReader defines read operations for tax type data
type TaxTypeReader interface {
	// FindTaxTypeByID retrieves a specific tax type by its unique identifier.
	FindTaxTypeByID(ctx context.Context, taxTypeID string) (*domain.TaxType, error)

	// ListTaxTypesByOwner retrieves all tax types belonging to an owner.
	// An empty ownerID lists tax types across all owners.
	ListTaxTypesByOwner(ctx context.Context, ownerID string) ([]domain.TaxType, error)
}

// TaxTypeWriter defines write operations for tax type data
type TaxTypeWriter interface {
	// SaveTaxType persists a new tax type.
	SaveTaxType(ctx context.Context, taxType domain.TaxType) error

	// UpdateTaxType updates an existing tax type's details.
	UpdateTaxType(ctx context.Context, taxType domain.TaxType) error

	// DeleteTaxType removes a tax type.
	DeleteTaxType(ctx context.Context, taxTypeID string) error
}

// TaxTypeRepositoryFacade combines all tax-type-related repository interfaces
type TaxTypeRepositoryFacade interface {
	TaxTypeReader
	TaxTypeWriter
}
