package models

// Customer is the persistence shape of a customer record.
type Customer struct {
	CustomerID string `db:"customer_id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	Address    string `db:"address"`
	AuditFields
}
