package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the persistence shape of an expense record.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	OwnerID     string          `db:"owner_id"`
	CustomerID  *string         `db:"customer_id"`
	Category    string          `db:"category"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	TaxAmount   decimal.Decimal `db:"tax_amount"`
	ExpenseDate time.Time       `db:"expense_date"`
	Notes       string          `db:"notes"`
	AuditFields
}
