package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
	"github.com/financeflow/financeflow_app/internal/dto"
	"github.com/financeflow/financeflow_app/internal/platform/logging"
	"github.com/financeflow/financeflow_app/internal/utils/billing"
)

// documentService orchestrates the invoice/estimate lifecycle: ownership
// checks, workflow-validated status transitions, derived totals, and atomic
// header+lines persistence.
type documentService struct {
	documentRepo portsrepo.DocumentRepositoryFacade
	customerRepo portsrepo.CustomerReader
	numbers      *documentNumberGenerator
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.DocumentSvcFacade {
	return &documentService{
		documentRepo: documentRepo,
		customerRepo: customerRepo,
		numbers:      newDocumentNumberGenerator(documentRepo),
	}
}

// Ensure documentService implements the portssvc.DocumentSvcFacade interface
var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// verifyCustomerOwnership checks that the referenced customer exists and
// belongs to the document's owner. A document may only ever bill a customer
// of the same account, for any actor.
func (s *documentService) verifyCustomerOwnership(ctx context.Context, customerID, ownerID string) error {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: customer %s does not belong to owner %s", apperrors.ErrForbidden, customerID, ownerID)
		}
		return fmt.Errorf("failed to fetch customer %s: %w", customerID, err)
	}
	if customer.OwnerID != ownerID {
		return fmt.Errorf("%w: customer %s does not belong to owner %s", apperrors.ErrForbidden, customerID, ownerID)
	}
	return nil
}

// buildLineItems materialises domain line items from the request inputs and
// the computed per-line totals, preserving submitted order.
func buildLineItems(documentID string, inputs []dto.LineItemInput, totals billing.Totals, userID string, now time.Time) []domain.LineItem {
	lines := make([]domain.LineItem, len(inputs))
	for i, in := range inputs {
		lines[i] = domain.LineItem{
			LineItemID:  uuid.NewString(),
			DocumentID:  documentID,
			ItemID:      in.ItemID,
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			TaxRate:     in.TaxRate,
			LineTotal:   totals.Lines[i].LineTotal,
			Position:    i,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		}
	}
	return lines
}

func toBillingInputs(inputs []dto.LineItemInput) []billing.LineInput {
	lines := make([]billing.LineInput, len(inputs))
	for i, in := range inputs {
		lines[i] = billing.LineInput{
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			TaxRate:   in.TaxRate,
		}
	}
	return lines
}

// CreateDocument creates a new DRAFT invoice or estimate with its line items
// after validation. Implements portssvc.DocumentWriterSvc.
func (s *documentService) CreateDocument(ctx context.Context, docType domain.DocumentType, ownerID string, req dto.CreateDocumentRequest) (*domain.Document, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	if err := s.verifyCustomerOwnership(ctx, req.CustomerID, ownerID); err != nil {
		logger.Warn("Customer ownership check failed for CreateDocument",
			slog.String("customer_id", req.CustomerID), slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		return nil, err
	}

	totals, err := billing.ComputeTotals(toBillingInputs(req.LineItems))
	if err != nil {
		return nil, err
	}

	// The number sequence serializes concurrent creations; the unique
	// constraint on the number column backstops it, with one retry before
	// giving up as a concurrency conflict.
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		number, err := s.numbers.Next(ctx, docType)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		documentID := uuid.NewString()
		doc := domain.Document{
			DocumentID:      documentID,
			DocType:         docType,
			OwnerID:         ownerID,
			CustomerID:      req.CustomerID,
			Number:          number,
			IssueDate:       now,
			DueDate:         req.DueDate,
			Status:          domain.StatusDraft,
			SalesCategoryID: req.SalesCategoryID,
			Notes:           req.Notes,
			Subtotal:        totals.Subtotal,
			TaxAmount:       totals.TaxAmount,
			Total:           totals.Total,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     ownerID,
				LastUpdatedAt: now,
				LastUpdatedBy: ownerID,
			},
		}
		lines := buildLineItems(documentID, req.LineItems, totals, ownerID, now)

		if err := s.documentRepo.SaveDocument(ctx, doc, lines); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				logger.Warn("Document number collision, retrying allocation",
					slog.String("doc_type", string(docType)), slog.String("number", number))
				lastErr = err
				continue
			}
			logger.Error("Failed to save document", slog.String("error", err.Error()), slog.String("doc_type", string(docType)))
			return nil, fmt.Errorf("failed to save document: %w", err)
		}

		logger.Info("Document created successfully",
			slog.String("document_id", documentID), slog.String("doc_type", string(docType)), slog.String("number", number))
		doc.LineItems = lines
		return &doc, nil
	}

	return nil, fmt.Errorf("%w: could not allocate a unique document number: %v", apperrors.ErrConflict, lastErr)
}

// loadOwnedDocument fetches a document header and applies the ownership
// scope: a scoped actor's mismatch is reported as not found so the existence
// of another owner's document is never confirmed.
func (s *documentService) loadOwnedDocument(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, docType, documentID)
	if err != nil {
		return nil, err
	}
	if actorOwnerID != "" && doc.OwnerID != actorOwnerID {
		// Obscure existence
		return nil, apperrors.ErrNotFound
	}
	return doc, nil
}

// UpdateDocument applies a full-replace update to a document: the status
// transition is validated first, totals are recomputed from the submitted
// lines, and the stored line items are replaced wholesale in one transaction.
// Implements portssvc.DocumentWriterSvc.
func (s *documentService) UpdateDocument(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string, req dto.UpdateDocumentRequest) (*domain.Document, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	doc, err := s.loadOwnedDocument(ctx, docType, documentID, actorOwnerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find document for update", slog.String("error", err.Error()), slog.String("document_id", documentID))
		}
		return nil, err
	}

	if err := s.verifyCustomerOwnership(ctx, req.CustomerID, doc.OwnerID); err != nil {
		return nil, err
	}

	// The transition is re-validated by the repository against the status
	// read here, so two concurrent transitions cannot both succeed from a
	// stale state.
	expectedStatus := doc.Status
	if err := doc.Transition(req.Status); err != nil {
		logger.Warn("Invalid status transition requested",
			slog.String("document_id", documentID), slog.String("from", string(expectedStatus)), slog.String("to", string(req.Status)))
		return nil, err
	}

	totals, err := billing.ComputeTotals(toBillingInputs(req.LineItems))
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userID := actorOwnerID
	if userID == "" {
		userID = doc.OwnerID
	}

	doc.CustomerID = req.CustomerID
	doc.DueDate = req.DueDate
	doc.SalesCategoryID = req.SalesCategoryID
	doc.Notes = req.Notes
	doc.Subtotal = totals.Subtotal
	doc.TaxAmount = totals.TaxAmount
	doc.Total = totals.Total
	doc.LastUpdatedAt = now
	doc.LastUpdatedBy = userID

	lines := buildLineItems(documentID, req.LineItems, totals, userID, now)

	if err := s.documentRepo.UpdateDocument(ctx, *doc, lines, expectedStatus); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Document update lost a concurrent modification race", slog.String("document_id", documentID))
			return nil, err
		}
		logger.Error("Failed to update document", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	logger.Info("Document updated successfully",
		slog.String("document_id", documentID), slog.String("status", string(doc.Status)), slog.Int("line_count", len(lines)))
	doc.LineItems = lines
	return doc, nil
}

// DeleteDocument removes a document and its line items atomically.
// Implements portssvc.DocumentWriterSvc.
func (s *documentService) DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.loadOwnedDocument(ctx, docType, documentID, actorOwnerID); err != nil {
		return err
	}

	if err := s.documentRepo.DeleteDocument(ctx, docType, documentID); err != nil {
		logger.Error("Failed to delete document", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document: %w", err)
	}

	logger.Info("Document deleted successfully", slog.String("document_id", documentID), slog.String("doc_type", string(docType)))
	return nil
}

// GetDocumentByID retrieves a document with its line items.
// Implements portssvc.DocumentReaderSvc.
func (s *documentService) GetDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string, actorOwnerID string) (*domain.Document, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	doc, err := s.loadOwnedDocument(ctx, docType, documentID, actorOwnerID)
	if err != nil {
		return nil, err
	}

	lines, err := s.documentRepo.FindLineItemsByDocumentID(ctx, documentID)
	if err != nil {
		logger.Error("Failed to fetch line items for document", slog.String("error", err.Error()), slog.String("document_id", documentID))
		return nil, fmt.Errorf("failed to retrieve line items for document %s: %w", documentID, apperrors.ErrInternal)
	}
	doc.LineItems = lines

	logger.Debug("Document retrieved successfully", slog.String("document_id", documentID), slog.Int("line_count", len(lines)))
	return doc, nil
}

// ListDocuments retrieves a paginated list of documents of one type.
// Implements portssvc.DocumentReaderSvc.
func (s *documentService) ListDocuments(ctx context.Context, docType domain.DocumentType, ownerID string, params dto.ListDocumentsParams) (*dto.ListDocumentsResponse, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	docs, nextToken, err := s.documentRepo.ListDocumentsByOwner(ctx, docType, ownerID, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list documents from repository", slog.String("error", err.Error()), slog.String("doc_type", string(docType)))
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = dto.ToDocumentResponse(&docs[i])
	}

	logger.Info("Documents listed successfully", slog.Int("count", len(docs)), slog.String("doc_type", string(docType)))
	return &dto.ListDocumentsResponse{Documents: responses, NextToken: nextToken}, nil
}

// ValidNextStatuses exposes the workflow to callers so a UI can restrict
// selectable transitions. Implements portssvc.WorkflowSvc.
func (s *documentService) ValidNextStatuses(docType domain.DocumentType, current domain.DocumentStatus) []domain.DocumentStatus {
	return domain.ValidNextStatuses(docType, current)
}
