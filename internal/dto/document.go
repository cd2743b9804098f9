package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/utils/billing"
)

// LineItemInput is one submitted document line. Numeric range constraints
// (quantity > 0, unitPrice >= 0, taxRate in [0,100]) are enforced by the
// totals calculator before anything is persisted.
type LineItemInput struct {
	ItemID      *string         `json:"itemID"`
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"` // defaults to 0
}

// CreateDocumentRequest carries the payload for creating an invoice or
// estimate. Status and number are never caller-supplied on creation.
type CreateDocumentRequest struct {
	CustomerID      string          `json:"customerID" validate:"required"`
	DueDate         time.Time       `json:"dueDate" validate:"required"`
	SalesCategoryID *string         `json:"salesCategoryID"`
	Notes           string          `json:"notes"`
	LineItems       []LineItemInput `json:"lineItems" validate:"required,min=1,dive"`
}

// UpdateDocumentRequest carries the full-replace payload for updating a
// document. The line item list always replaces the stored set wholesale;
// partial patches are not supported.
type UpdateDocumentRequest struct {
	CustomerID      string                `json:"customerID" validate:"required"`
	DueDate         time.Time             `json:"dueDate" validate:"required"`
	Status          domain.DocumentStatus `json:"status" validate:"required"`
	SalesCategoryID *string               `json:"salesCategoryID"`
	Notes           string                `json:"notes"`
	LineItems       []LineItemInput       `json:"lineItems" validate:"required,min=1,dive"`
}

// LineItemResponse is the rendered form of one document line.
type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	ItemID      *string         `json:"itemID,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// DocumentResponse is the rendered form of a document header plus lines.
// Monetary values are rounded to 2 decimal places here, at the presentation
// boundary; stored values keep full precision.
type DocumentResponse struct {
	DocumentID      string                `json:"documentID"`
	DocType         domain.DocumentType   `json:"docType"`
	OwnerID         string                `json:"ownerID"`
	CustomerID      string                `json:"customerID"`
	Number          string                `json:"number"`
	IssueDate       time.Time             `json:"issueDate"`
	DueDate         time.Time             `json:"dueDate"`
	Status          domain.DocumentStatus `json:"status"`
	SalesCategoryID *string               `json:"salesCategoryID,omitempty"`
	Notes           string                `json:"notes,omitempty"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	TaxAmount       decimal.Decimal       `json:"taxAmount"`
	Total           decimal.Decimal       `json:"total"`
	LineItems       []LineItemResponse    `json:"lineItems,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// ListDocumentsParams holds parameters for listing documents of one type.
type ListDocumentsParams struct {
	Limit     int     `json:"limit"`
	NextToken *string `json:"nextToken"`
}

// ListDocumentsResponse is a page of documents plus the token for the next page.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToLineItemResponse converts a domain LineItem to its response form.
func ToLineItemResponse(li *domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:  li.LineItemID,
		ItemID:      li.ItemID,
		Description: li.Description,
		Quantity:    li.Quantity,
		UnitPrice:   li.UnitPrice,
		TaxRate:     li.TaxRate,
		LineTotal:   billing.RoundMoney(li.LineTotal),
	}
}

// ToDocumentResponse converts a domain Document to its response form.
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:      d.DocumentID,
		DocType:         d.DocType,
		OwnerID:         d.OwnerID,
		CustomerID:      d.CustomerID,
		Number:          d.Number,
		IssueDate:       d.IssueDate,
		DueDate:         d.DueDate,
		Status:          d.Status,
		SalesCategoryID: d.SalesCategoryID,
		Notes:           d.Notes,
		Subtotal:        billing.RoundMoney(d.Subtotal),
		TaxAmount:       billing.RoundMoney(d.TaxAmount),
		Total:           billing.RoundMoney(d.Total),
		CreatedAt:       d.CreatedAt,
	}
	if len(d.LineItems) > 0 {
		resp.LineItems = make([]LineItemResponse, len(d.LineItems))
		for i := range d.LineItems {
			resp.LineItems[i] = ToLineItemResponse(&d.LineItems[i])
		}
	}
	return resp
}
