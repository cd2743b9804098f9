package dto

import (
	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// CreateItemRequest carries the payload for creating a catalog item.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// UpdateItemRequest carries optional field updates for a catalog item.
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	TaxRate     *decimal.Decimal `json:"taxRate"`
}

// ItemResponse is the rendered form of a catalog item.
type ItemResponse struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
}

// ToItemResponse converts a domain Item to its response form.
func ToItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ItemID:      i.ItemID,
		Name:        i.Name,
		Description: i.Description,
		UnitPrice:   i.UnitPrice,
		TaxRate:     i.TaxRate,
	}
}
