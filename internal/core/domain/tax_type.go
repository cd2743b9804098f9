package domain

import "github.com/shopspring/decimal"

// TaxType is a named tax rate an owner keeps in their catalog. It is a
// reference list for picking line item tax rates; documents always copy the
// rate, so editing a tax type never changes an issued document.
type TaxType struct {
	TaxTypeID string          `json:"taxTypeID"` // Primary Key (e.g., UUID)
	OwnerID   string          `json:"ownerID"`
	Title     string          `json:"title"`
	Rate      decimal.Decimal `json:"rate"` // Percentage, 0 to 100
	AuditFields
}
