package dto

import (
	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// CreateSalesCategoryRequest carries the payload for creating a sales category.
type CreateSalesCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateSalesCategoryRequest carries optional field updates for a sales category.
type UpdateSalesCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// SalesCategoryResponse is the rendered form of a sales category.
type SalesCategoryResponse struct {
	SalesCategoryID string `json:"salesCategoryID"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
}

// ToSalesCategoryResponse converts a domain SalesCategory to its response form.
func ToSalesCategoryResponse(sc *domain.SalesCategory) SalesCategoryResponse {
	return SalesCategoryResponse{
		SalesCategoryID: sc.SalesCategoryID,
		Name:            sc.Name,
		Description:     sc.Description,
	}
}
