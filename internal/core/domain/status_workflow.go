package domain

import "github.com/financeflow/financeflow_app/internal/apperrors"

// estimateWorkflow lists the legal outgoing transitions per estimate status.
// COMPLETED and CANCELLED are terminal.
var estimateWorkflow = map[DocumentStatus][]DocumentStatus{
	StatusDraft:         {StatusPendingReview, StatusOnHold, StatusCancelled},
	StatusPendingReview: {StatusUnderReview, StatusOnHold, StatusCancelled},
	StatusUnderReview:   {StatusApproved, StatusRejected, StatusOnHold, StatusCancelled},
	StatusApproved:      {StatusCompleted, StatusOnHold, StatusCancelled},
	StatusRejected:      {StatusDraft, StatusOnHold, StatusCancelled},
	StatusOnHold:        {StatusDraft, StatusPendingReview, StatusUnderReview, StatusApproved, StatusRejected, StatusCancelled},
	StatusCompleted:     {},
	StatusCancelled:     {},
}

// invoiceWorkflow lists the legal outgoing transitions per invoice status.
// VOID and REFUNDED are terminal.
var invoiceWorkflow = map[DocumentStatus][]DocumentStatus{
	StatusDraft:         {StatusPending, StatusUnpaid, StatusVoid},
	StatusPending:       {StatusOpen, StatusOverdue, StatusUnpaid, StatusVoid},
	StatusOpen:          {StatusPartiallyPaid, StatusPaid, StatusOverdue, StatusUnpaid, StatusVoid},
	StatusPartiallyPaid: {StatusPaid, StatusUnpaid, StatusVoid},
	StatusPaid:          {StatusRefunded, StatusVoid},
	StatusOverdue:       {StatusOpen, StatusPartiallyPaid, StatusPaid, StatusUnpaid, StatusVoid},
	StatusUnpaid:        {StatusDraft, StatusPending, StatusOpen, StatusVoid},
	StatusVoid:          {},
	StatusRefunded:      {},
}

func workflowFor(docType DocumentType) map[DocumentStatus][]DocumentStatus {
	if docType == Invoice {
		return invoiceWorkflow
	}
	return estimateWorkflow
}

// ValidNextStatuses returns the statuses reachable from the given one for
// the document type. An unknown status yields an empty set: conservatively,
// nothing is reachable from a state the workflow does not know.
func ValidNextStatuses(docType DocumentType, from DocumentStatus) []DocumentStatus {
	edges := workflowFor(docType)[from]
	next := make([]DocumentStatus, len(edges))
	copy(next, edges)
	return next
}

// IsValidTransition reports whether the workflow for the document type
// permits moving from one status to another. Callers must not consult it for
// a no-op transition; an unchanged status is always allowed.
func IsValidTransition(docType DocumentType, from, to DocumentStatus) bool {
	for _, s := range workflowFor(docType)[from] {
		if s == to {
			return true
		}
	}
	return false
}

// NewTransitionError builds the error reported for an illegal transition,
// including the statuses that would have been accepted.
func NewTransitionError(docType DocumentType, from, to DocumentStatus) *apperrors.TransitionError {
	validNext := ValidNextStatuses(docType, from)
	next := make([]string, len(validNext))
	for i, s := range validNext {
		next[i] = string(s)
	}
	return &apperrors.TransitionError{
		DocType:   string(docType),
		From:      string(from),
		To:        string(to),
		ValidNext: next,
	}
}
