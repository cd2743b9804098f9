package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// SalesCategorySvcFacade defines owner-scoped CRUD for sales categories.
type SalesCategorySvcFacade interface {
	// CreateSalesCategory persists a new sales category under the given owner.
	CreateSalesCategory(ctx context.Context, ownerID string, req dto.CreateSalesCategoryRequest) (*domain.SalesCategory, error)

	// GetSalesCategoryByID retrieves a category; scoped actors only see their own.
	GetSalesCategoryByID(ctx context.Context, salesCategoryID string, actorOwnerID string) (*domain.SalesCategory, error)

	// ListSalesCategories retrieves the categories of an owner (all owners when empty).
	ListSalesCategories(ctx context.Context, ownerID string) ([]domain.SalesCategory, error)

	// UpdateSalesCategory applies partial updates to a category.
	UpdateSalesCategory(ctx context.Context, salesCategoryID string, actorOwnerID string, req dto.UpdateSalesCategoryRequest) (*domain.SalesCategory, error)

	// DeleteSalesCategory removes a category.
	DeleteSalesCategory(ctx context.Context, salesCategoryID string, actorOwnerID string) error
}
