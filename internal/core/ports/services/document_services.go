package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// DocumentReaderSvc defines read operations for invoices and estimates.
type DocumentReaderSvc interface {
	// GetDocumentByID retrieves a document with its line items. A scoped
	// actor only sees its own documents; others appear as not found.
	GetDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string) (*domain.Document, error)

	// ListDocuments retrieves a paginated list of documents of one type.
	ListDocuments(ctx context.Context, docType domain.DocumentType, ownerID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error)
}

// DocumentWriterSvc defines the document lifecycle operations.
type DocumentWriterSvc interface {
	// CreateDocument creates a new DRAFT document with a freshly assigned
	// number and totals derived from the submitted line items.
	CreateDocument(ctx context.Context, docType domain.DocumentType, ownerID string, req dto.CreateDocumentRequest) (*domain.Document, error)

	// UpdateDocument applies a full-replace update: status transition
	// validated against the workflow, totals recomputed, line items
	// replaced wholesale.
	UpdateDocument(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string, req dto.UpdateDocumentRequest) (*domain.Document, error)

	// DeleteDocument removes a document and its line items.
	DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string) error
}

// WorkflowSvc exposes the status state machine to callers (e.g. for a UI to
// restrict selectable transitions).
type WorkflowSvc interface {
	// ValidNextStatuses returns the statuses reachable from the current one.
	ValidNextStatuses(docType domain.DocumentType, current domain.DocumentStatus) []domain.DocumentStatus
}

// DocumentSvcFacade combines all document-related service interfaces
// This is a facade for clients that need access to all operations
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	WorkflowSvc
}
