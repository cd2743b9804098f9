// Package memory provides map-backed repository implementations used by
// service tests. They mimic the pgsql adapters' contract: unique numbers,
// status-guarded updates and a per-type sequence that survives deletions.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_app/internal/utils/numbering"
	"github.com/financeflow/financeflow_app/internal/utils/pagination"
)

type DocumentRepository struct {
	mu        sync.Mutex
	documents map[string]domain.Document
	lines     map[string][]domain.LineItem
	sequences map[domain.DocumentType]int64
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{
		documents: make(map[string]domain.Document),
		lines:     make(map[string][]domain.LineItem),
		sequences: make(map[domain.DocumentType]int64),
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*DocumentRepository)(nil)

func (r *DocumentRepository) SaveDocument(_ context.Context, doc domain.Document, lines []domain.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.documents {
		if existing.DocType == doc.DocType && existing.Number == doc.Number {
			return apperrors.ErrDuplicate
		}
	}

	doc.LineItems = nil
	r.documents[doc.DocumentID] = doc
	r.lines[doc.DocumentID] = append([]domain.LineItem(nil), lines...)
	return nil
}

func (r *DocumentRepository) UpdateDocument(_ context.Context, doc domain.Document, lines []domain.LineItem, expectedStatus domain.DocumentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.documents[doc.DocumentID]
	if !ok || stored.DocType != doc.DocType {
		return apperrors.ErrNotFound
	}
	if stored.Status != expectedStatus {
		return apperrors.ErrConflict
	}

	doc.LineItems = nil
	r.documents[doc.DocumentID] = doc
	r.lines[doc.DocumentID] = append([]domain.LineItem(nil), lines...)
	return nil
}

func (r *DocumentRepository) DeleteDocument(_ context.Context, docType domain.DocumentType, documentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.documents[documentID]
	if !ok || stored.DocType != docType {
		return apperrors.ErrNotFound
	}
	delete(r.documents, documentID)
	delete(r.lines, documentID)
	return nil
}

func (r *DocumentRepository) FindDocumentByID(_ context.Context, docType domain.DocumentType, documentID string) (*domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.documents[documentID]
	if !ok || stored.DocType != docType {
		return nil, apperrors.ErrNotFound
	}
	doc := stored
	return &doc, nil
}

func (r *DocumentRepository) FindLineItemsByDocumentID(_ context.Context, documentID string) ([]domain.LineItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := append([]domain.LineItem(nil), r.lines[documentID]...)
	sort.Slice(lines, func(i, j int) bool { return lines[i].Position < lines[j].Position })
	return lines, nil
}

func (r *DocumentRepository) ListDocumentsByOwner(_ context.Context, docType domain.DocumentType, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}

	docs := make([]domain.Document, 0, len(r.documents))
	for _, d := range r.documents {
		if d.DocType != docType {
			continue
		}
		if ownerID != "" && d.OwnerID != ownerID {
			continue
		}
		docs = append(docs, d)
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].IssueDate.Equal(docs[j].IssueDate) {
			return docs[i].IssueDate.After(docs[j].IssueDate)
		}
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		// Tie-break on ID so rows sharing both timestamps keep a stable
		// order across pages.
		return docs[i].DocumentID > docs[j].DocumentID
	})

	if nextToken != nil && *nextToken != "" {
		lastIssueDate, lastCreatedAt, lastDocumentID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		beforeCursor := func(d domain.Document) bool {
			if !d.IssueDate.Equal(lastIssueDate) {
				return d.IssueDate.Before(lastIssueDate)
			}
			if !d.CreatedAt.Equal(lastCreatedAt) {
				return d.CreatedAt.Before(lastCreatedAt)
			}
			return d.DocumentID < lastDocumentID
		}
		idx := 0
		for idx < len(docs) && !beforeCursor(docs[idx]) {
			idx++
		}
		docs = docs[idx:]
	}

	var token *string
	if len(docs) > limit {
		last := docs[limit-1]
		t := pagination.EncodeToken(last.IssueDate, last.CreatedAt, last.DocumentID)
		token = &t
		docs = docs[:limit]
	}
	return docs, token, nil
}

func (r *DocumentRepository) FindMaxDocumentNumber(_ context.Context, docType domain.DocumentType) (*string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxNumberLocked(docType), nil
}

func (r *DocumentRepository) maxNumberLocked(docType domain.DocumentType) *string {
	var max *string
	var maxSeq int64 = -1
	for _, d := range r.documents {
		if d.DocType != docType {
			continue
		}
		seq, err := numbering.Parse(docType, d.Number)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
			number := d.Number
			max = &number
		}
	}
	return max
}

func (r *DocumentRepository) CountDocumentsByCustomer(_ context.Context, customerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, d := range r.documents {
		if d.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func (r *DocumentRepository) NextDocumentSequence(_ context.Context, docType domain.DocumentType) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sequences[docType]; !ok {
		var seed int64
		if max := r.maxNumberLocked(docType); max != nil {
			seq, err := numbering.Parse(docType, *max)
			if err != nil {
				return 0, err
			}
			seed = seq
		}
		r.sequences[docType] = seed
	}
	r.sequences[docType]++
	return r.sequences[docType], nil
}
