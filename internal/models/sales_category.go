package models

// SalesCategory is the persistence shape of a sales category.
type SalesCategory struct {
	SalesCategoryID string `db:"sales_category_id"`
	OwnerID         string `db:"owner_id"`
	Name            string `db:"name"`
	Description     string `db:"description"`
	AuditFields
}
