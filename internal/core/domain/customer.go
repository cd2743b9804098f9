package domain

// Customer represents a billable customer owned by a single account. The
// document core checks this ownership before a scoped actor may bill the
// customer.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (e.g., UUID)
	OwnerID    string `json:"ownerID"`    // Owning account; immutable
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	AuditFields
}
