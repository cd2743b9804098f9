package domain

import "github.com/shopspring/decimal"

// Item is a catalog entry a line item may reference. Documents copy the
// description and price at billing time, so later catalog edits never change
// an issued document.
type Item struct {
	ItemID      string          `json:"itemID"` // Primary Key (e.g., UUID)
	OwnerID     string          `json:"ownerID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"taxRate"` // Default percentage applied when billed
	AuditFields
}
