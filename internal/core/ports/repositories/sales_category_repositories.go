package repositories

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// SalesCategoryReader defines read operations for sales category data
type SalesCategoryReader interface {
	// FindSalesCategoryByID retrieves a specific sales category by its identifier.
	FindSalesCategoryByID(ctx context.Context, salesCategoryID string) (*domain.SalesCategory, error)

	// ListSalesCategoriesByOwner retrieves all sales categories belonging to an owner.
	// An empty ownerID lists categories across all owners.
	ListSalesCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.SalesCategory, error)
}

// SalesCategoryWriter defines write operations for sales category data
type SalesCategoryWriter interface {
	// SaveSalesCategory persists a new sales category.
	SaveSalesCategory(ctx context.Context, category domain.SalesCategory) error

	// UpdateSalesCategory updates an existing sales category's details.
	UpdateSalesCategory(ctx context.Context, category domain.SalesCategory) error

	// DeleteSalesCategory removes a sales category.
	DeleteSalesCategory(ctx context.Context, salesCategoryID string) error
}

// SalesCategoryRepositoryFacade combines all sales-category repository interfaces
type SalesCategoryRepositoryFacade interface {
	SalesCategoryReader
	SalesCategoryWriter
}
