package models

import "github.com/shopspring/decimal"

// LineItem is the persistence shape of a document line item.
type LineItem struct {
	LineItemID  string          `db:"line_item_id"`
	DocumentID  string          `db:"document_id"`
	ItemID      *string         `db:"item_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	LineTotal   decimal.Decimal `db:"line_total"`
	Position    int             `db:"position"`
	AuditFields
}
