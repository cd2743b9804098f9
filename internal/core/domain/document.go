package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType discriminates the two billing document variants, which share
// one structural shape.
type DocumentType string

const (
	Invoice  DocumentType = "INVOICE"
	Estimate DocumentType = "ESTIMATE"
)

// DocumentStatus is the lifecycle state of a billing document. Invoices and
// estimates draw from disjoint sets (apart from DRAFT); the workflow tables
// in status_workflow.go define which values apply to which type.
type DocumentStatus string

const (
	StatusDraft DocumentStatus = "DRAFT"

	// Estimate statuses
	StatusPendingReview DocumentStatus = "PENDING_REVIEW"
	StatusUnderReview   DocumentStatus = "UNDER_REVIEW"
	StatusApproved      DocumentStatus = "APPROVED"
	StatusRejected      DocumentStatus = "REJECTED"
	StatusOnHold        DocumentStatus = "ON_HOLD"
	StatusCompleted     DocumentStatus = "COMPLETED"
	StatusCancelled     DocumentStatus = "CANCELLED"

	// Invoice statuses
	StatusPending       DocumentStatus = "PENDING"
	StatusOpen          DocumentStatus = "OPEN"
	StatusPartiallyPaid DocumentStatus = "PARTIALLY_PAID"
	StatusPaid          DocumentStatus = "PAID"
	StatusOverdue       DocumentStatus = "OVERDUE"
	StatusUnpaid        DocumentStatus = "UNPAID"
	StatusVoid          DocumentStatus = "VOID"
	StatusRefunded      DocumentStatus = "REFUNDED"
)

// Document is the aggregate shared by invoices and estimates: a header plus
// the line items it exclusively owns. Subtotal, TaxAmount and Total are
// derived from the line items and are never set directly by callers.
type Document struct {
	DocumentID      string          `json:"documentID"`      // Primary Key (e.g., UUID)
	DocType         DocumentType    `json:"docType"`         // INVOICE or ESTIMATE
	OwnerID         string          `json:"ownerID"`         // Owning account; immutable after creation
	CustomerID      string          `json:"customerID"`      // FK -> Customer owned by the same account
	Number          string          `json:"number"`          // INV-00001 / EST-00001; assigned once, immutable
	IssueDate       time.Time       `json:"issueDate"`       // Creation time; immutable
	DueDate         time.Time       `json:"dueDate"`         // Due date (invoice) or expiry date (estimate)
	Status          DocumentStatus  `json:"status"`          // Lifecycle state; change via Transition only
	SalesCategoryID *string         `json:"salesCategoryID"` // Nullable FK -> SalesCategory
	Notes           string          `json:"notes"`           // Nullable free text
	Subtotal        decimal.Decimal `json:"subtotal"`        // Derived: sum of line subtotals
	TaxAmount       decimal.Decimal `json:"taxAmount"`       // Derived: sum of line taxes
	Total           decimal.Decimal `json:"total"`           // Derived: subtotal + taxAmount
	LineItems       []LineItem      `json:"lineItems"`       // Ordered; replaced wholesale on update
	AuditFields
}

// Transition moves the document to the given status, consulting the status
// workflow for the document type. It is the only supported way to change
// Status after creation. A no-op transition (same status) is allowed without
// consulting the workflow.
func (d *Document) Transition(to DocumentStatus) error {
	if d.Status == to {
		return nil
	}
	if !IsValidTransition(d.DocType, d.Status, to) {
		return NewTransitionError(d.DocType, d.Status, to)
	}
	d.Status = to
	return nil
}
