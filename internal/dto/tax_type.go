package dto

import (
	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// CreateTaxTypeRequest carries the payload for creating a tax type.
type CreateTaxTypeRequest struct {
	Title string          `json:"title" validate:"required,max=255"`
	Rate  decimal.Decimal `json:"rate"`
}

// UpdateTaxTypeRequest carries optional field updates for a tax type.
type UpdateTaxTypeRequest struct {
	Title *string          `json:"title" validate:"omitempty,max=255"`
	Rate  *decimal.Decimal `json:"rate"`
}

// TaxTypeResponse is the rendered form of a tax type.
type TaxTypeResponse struct {
	TaxTypeID string          `json:"taxTypeID"`
	Title     string          `json:"title"`
	Rate      decimal.Decimal `json:"rate"`
}

// ToTaxTypeResponse converts a domain TaxType to its response form.
func ToTaxTypeResponse(t *domain.TaxType) TaxTypeResponse {
	return TaxTypeResponse{
		TaxTypeID: t.TaxTypeID,
		Title:     t.Title,
		Rate:      t.Rate,
	}
}
