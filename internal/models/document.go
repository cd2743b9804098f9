package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Document is the persistence shape of a billing document header. Field-name
// translation to the snake_case columns lives here and in the pgsql
// adapters, never in the core.
type Document struct {
	DocumentID      string          `db:"document_id"`
	DocType         string          `db:"doc_type"`
	OwnerID         string          `db:"owner_id"`
	CustomerID      string          `db:"customer_id"`
	Number          string          `db:"number"`
	IssueDate       time.Time       `db:"issue_date"`
	DueDate         time.Time       `db:"due_date"`
	Status          string          `db:"status"`
	SalesCategoryID *string         `db:"sales_category_id"`
	Notes           string          `db:"notes"`
	Subtotal        decimal.Decimal `db:"subtotal"`
	TaxAmount       decimal.Decimal `db:"tax_amount"`
	Total           decimal.Decimal `db:"total"`
	AuditFields
}
