package domain

// SalesCategory groups documents for reporting. Referencing one from a
// document is optional.
type SalesCategory struct {
	SalesCategoryID string `json:"salesCategoryID"` // Primary Key (e.g., UUID)
	OwnerID         string `json:"ownerID"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	AuditFields
}
