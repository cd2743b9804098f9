package repositories

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a document header of the given type by its identifier.
	FindDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string) (*domain.Document, error)

	// FindLineItemsByDocumentID retrieves a document's line items in position order.
	FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error)

	// ListDocumentsByOwner retrieves a paginated list of documents of one type using
	// token-based pagination. An empty ownerID lists documents across all owners.
	ListDocumentsByOwner(ctx context.Context, docType domain.DocumentType, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error)

	// FindMaxDocumentNumber retrieves the stored document number with the highest
	// numeric suffix for the given type, or nil when no documents exist yet.
	FindMaxDocumentNumber(ctx context.Context, docType domain.DocumentType) (*string, error)

	// CountDocumentsByCustomer counts documents of either type referencing a customer.
	CountDocumentsByCustomer(ctx context.Context, customerID string) (int64, error)
}

// DocumentWriter defines write operations for document data. Every mutation
// spans the header and line-item tables and must be atomic: the adapter runs
// it inside a single database transaction.
type DocumentWriter interface {
	// SaveDocument persists a new document header and its line items atomically.
	// A collision on the unique document number yields apperrors.ErrDuplicate.
	SaveDocument(ctx context.Context, doc domain.Document, lines []domain.LineItem) error

	// UpdateDocument updates the header and replaces all line items
	// (delete-all-then-insert) atomically. The header write is guarded by
	// expectedStatus, the status read at the start of the caller's operation;
	// a stale guard yields apperrors.ErrConflict.
	UpdateDocument(ctx context.Context, doc domain.Document, lines []domain.LineItem, expectedStatus domain.DocumentStatus) error

	// DeleteDocument removes the line items and then the header atomically.
	DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string) error
}

// DocumentSequencer allocates document numbers. Implementations must
// serialize concurrent allocations of the same type so two creations never
// observe the same value.
type DocumentSequencer interface {
	// NextDocumentSequence atomically increments and returns the per-type
	// number sequence, seeding it from the highest stored number on first use.
	NextDocumentSequence(ctx context.Context, docType domain.DocumentType) (int64, error)
}

// DocumentRepositoryFacade combines all document-related repository interfaces
// This is a facade for clients that need access to all operations
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	DocumentSequencer
}

// DocumentRepositoryWithTx extends DocumentRepositoryFacade with transaction capabilities
type DocumentRepositoryWithTx interface {
	DocumentRepositoryFacade
	TransactionManager
}
