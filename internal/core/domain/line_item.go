package domain

import "github.com/shopspring/decimal"

// LineItem represents a single billable row within a Document. Line items
// have no independent lifecycle: they are created and deleted with their
// parent, and an update replaces the whole set.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`  // Primary Key (e.g., UUID)
	DocumentID  string          `json:"documentID"`  // FK -> Document.documentID (Not Null)
	ItemID      *string         `json:"itemID"`      // Nullable FK -> catalog Item; nil means a free-text line
	Description string          `json:"description"` // Required
	Quantity    decimal.Decimal `json:"quantity"`    // Positive
	UnitPrice   decimal.Decimal `json:"unitPrice"`   // Non-negative
	TaxRate     decimal.Decimal `json:"taxRate"`     // Percentage in [0, 100]
	LineTotal   decimal.Decimal `json:"lineTotal"`   // Derived: quantity * unitPrice * (1 + taxRate/100)
	Position    int             `json:"position"`    // Display and recompute order within the document
	AuditFields
}
