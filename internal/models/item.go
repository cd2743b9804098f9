package models

import "github.com/shopspring/decimal"

// Item is the persistence shape of a catalog item.
type Item struct {
	ItemID      string          `db:"item_id"`
	OwnerID     string          `db:"owner_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	TaxRate     decimal.Decimal `db:"tax_rate"`
	AuditFields
}
