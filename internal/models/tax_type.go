package models

import "github.com/shopspring/decimal"

// TaxType is the persistence shape of a tax type.
type TaxType struct {
	TaxTypeID string          `db:"tax_type_id"`
	OwnerID   string          `db:"owner_id"`
	Title     string          `db:"title"`
	Rate      decimal.Decimal `db:"rate"`
	AuditFields
}
