package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_app/internal/models"
	"github.com/financeflow/financeflow_app/internal/utils/mapping"
	"github.com/financeflow/financeflow_app/internal/utils/numbering"
	"github.com/financeflow/financeflow_app/internal/utils/pagination"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for document header, line
// item and number sequence data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryWithTx {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryWithTx
var _ portsrepo.DocumentRepositoryWithTx = (*PgxDocumentRepository)(nil)

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const lineItemInsertQuery = `
	INSERT INTO document_line_items (
		line_item_id, document_id, item_id, description, quantity, unit_price,
		tax_rate, line_total, position,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`

// queueLineItemInserts adds one insert per line item to the batch.
func queueLineItemInserts(batch *pgx.Batch, lines []domain.LineItem) {
	for _, line := range lines {
		m := mapping.ToModelLineItem(line)
		batch.Queue(lineItemInsertQuery,
			m.LineItemID,
			m.DocumentID,
			m.ItemID,
			m.Description,
			m.Quantity,
			m.UnitPrice,
			m.TaxRate,
			m.LineTotal,
			m.Position,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
}

// SaveDocument persists a new document header and its line items within a DB
// transaction. A unique violation on the number column maps to ErrDuplicate
// so the service can retry the allocation.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, doc domain.Document, lines []domain.LineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(doc)
	headerQuery := `
		INSERT INTO documents (
			document_id, doc_type, owner_id, customer_id, number, issue_date,
			due_date, status, sales_category_id, notes, subtotal, tax_amount, total,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err = tx.Exec(ctx, headerQuery,
		m.DocumentID,
		m.DocType,
		m.OwnerID,
		m.CustomerID,
		m.Number,
		m.IssueDate,
		m.DueDate,
		m.Status,
		m.SalesCategoryID,
		m.Notes,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert document "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItemInserts(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for document "+m.DocumentID, err)
	}

	return r.Commit(ctx, tx)
}

// UpdateDocument updates the header and replaces all line items within a DB
// transaction. The header write only applies while the stored status still
// equals expectedStatus; losing that race yields ErrConflict.
func (r *PgxDocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document, lines []domain.LineItem, expectedStatus domain.DocumentStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelDocument(doc)
	headerQuery := `
		UPDATE documents
		SET customer_id = $4,
		    due_date = $5,
		    status = $6,
		    sales_category_id = $7,
		    notes = $8,
		    subtotal = $9,
		    tax_amount = $10,
		    total = $11,
		    last_updated_at = $12,
		    last_updated_by = $13
		WHERE document_id = $1 AND doc_type = $2 AND status = $3;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		m.DocumentID,
		m.DocType,
		string(expectedStatus),
		m.CustomerID,
		m.DueDate,
		m.Status,
		m.SalesCategoryID,
		m.Notes,
		m.Subtotal,
		m.TaxAmount,
		m.Total,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update document "+m.DocumentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a vanished document from a lost status race
		var exists bool
		checkQuery := `SELECT EXISTS (SELECT 1 FROM documents WHERE document_id = $1 AND doc_type = $2);`
		if err := tx.QueryRow(ctx, checkQuery, m.DocumentID, m.DocType).Scan(&exists); err != nil {
			return apperrors.NewAppError(500, "failed to check document "+m.DocumentID, err)
		}
		if exists {
			return apperrors.ErrConflict
		}
		return apperrors.ErrNotFound
	}

	deleteQuery := `DELETE FROM document_line_items WHERE document_id = $1;`
	if _, err := tx.Exec(ctx, deleteQuery, m.DocumentID); err != nil {
		return apperrors.NewAppError(500, "failed to clear line items for document "+m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	queueLineItemInserts(batch, lines)
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert line items for document "+m.DocumentID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteDocument removes the line items and then the header within a DB
// transaction. The number sequence row is untouched, so deleted numbers are
// never reissued.
func (r *PgxDocumentRepository) DeleteDocument(ctx context.Context, docType domain.DocumentType, documentID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM document_line_items WHERE document_id = $1;`, documentID); err != nil {
		return apperrors.NewAppError(500, "failed to delete line items for document "+documentID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM documents WHERE document_id = $1 AND doc_type = $2;`, documentID, string(docType))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete document "+documentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

const documentColumns = `
	document_id, doc_type, owner_id, customer_id, number, issue_date,
	due_date, status, sales_category_id, notes, subtotal, tax_amount, total,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanDocument(row pgx.Row) (*models.Document, error) {
	var m models.Document
	var salesCategoryID sql.NullString
	err := row.Scan(
		&m.DocumentID,
		&m.DocType,
		&m.OwnerID,
		&m.CustomerID,
		&m.Number,
		&m.IssueDate,
		&m.DueDate,
		&m.Status,
		&salesCategoryID,
		&m.Notes,
		&m.Subtotal,
		&m.TaxAmount,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if salesCategoryID.Valid {
		m.SalesCategoryID = &salesCategoryID.String
	}
	return &m, nil
}

// FindDocumentByID retrieves a document header of the given type by its ID.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, docType domain.DocumentType, documentID string) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE document_id = $1 AND doc_type = $2;`

	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID, string(docType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find document by ID "+documentID, err)
	}

	domainDoc := mapping.ToDomainDocument(*m)
	return &domainDoc, nil
}

// FindLineItemsByDocumentID retrieves a document's line items in position order.
func (r *PgxDocumentRepository) FindLineItemsByDocumentID(ctx context.Context, documentID string) ([]domain.LineItem, error) {
	query := `
		SELECT line_item_id, document_id, item_id, description, quantity, unit_price,
		       tax_rate, line_total, position,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM document_line_items
		WHERE document_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query line items for document "+documentID, err)
	}
	defer rows.Close()

	lineItems := []models.LineItem{}
	for rows.Next() {
		var li models.LineItem
		var itemID sql.NullString
		err := rows.Scan(
			&li.LineItemID,
			&li.DocumentID,
			&itemID,
			&li.Description,
			&li.Quantity,
			&li.UnitPrice,
			&li.TaxRate,
			&li.LineTotal,
			&li.Position,
			&li.CreatedAt,
			&li.CreatedBy,
			&li.LastUpdatedAt,
			&li.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item row for document "+documentID, err)
		}
		if itemID.Valid {
			li.ItemID = &itemID.String
		}
		lineItems = append(lineItems, li)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line item rows for document "+documentID, err)
	}

	return mapping.ToDomainLineItemSlice(lineItems), nil
}

// ListDocumentsByOwner retrieves a paginated list of documents of one type
// using token-based pagination, newest first. An empty ownerID lists
// documents across all owners.
func (r *PgxDocumentRepository) ListDocumentsByOwner(ctx context.Context, docType domain.DocumentType, ownerID string, limit int, nextToken *string) ([]domain.Document, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + documentColumns + ` FROM documents`

	filterClause := `WHERE doc_type = $1`
	args := []interface{}{string(docType)}
	if ownerID != "" {
		args = append(args, ownerID)
		filterClause += ` AND owner_id = $` + strconv.Itoa(len(args))
	}

	// Ordering must be stable for the cursor to work; document_id breaks
	// ties between rows sharing both timestamps.
	orderByClause := `ORDER BY issue_date DESC, created_at DESC, document_id DESC`

	if nextToken != nil && *nextToken != "" {
		lastIssueDate, lastCreatedAt, lastDocumentID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastIssueDate, lastCreatedAt, lastDocumentID)
		filterClause += ` AND (issue_date, created_at, document_id) < ($` + strconv.Itoa(len(args)-2) + `, $` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query documents of type "+string(docType), err)
	}
	defer rows.Close()

	modelDocs := make([]models.Document, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanDocument(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan document row", scanErr)
		}
		modelDocs = append(modelDocs, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating document rows", err)
	}

	var nextTokenVal *string
	results := modelDocs
	if len(modelDocs) > limit {
		lastDoc := modelDocs[limit-1]
		token := pagination.EncodeToken(lastDoc.IssueDate, lastDoc.CreatedAt, lastDoc.DocumentID)
		nextTokenVal = &token
		results = modelDocs[:limit]
	}

	domainDocs := make([]domain.Document, len(results))
	for i, m := range results {
		domainDocs[i] = mapping.ToDomainDocument(m)
	}

	return domainDocs, nextTokenVal, nil
}

// FindMaxDocumentNumber retrieves the stored number with the highest numeric
// suffix for the given type, or nil when none exist. Sorting by length first
// keeps the comparison numeric for the fixed prefix plus digits shape.
func (r *PgxDocumentRepository) FindMaxDocumentNumber(ctx context.Context, docType domain.DocumentType) (*string, error) {
	query := `
		SELECT number FROM documents
		WHERE doc_type = $1
		ORDER BY length(number) DESC, number DESC
		LIMIT 1;
	`
	var number string
	err := r.Pool.QueryRow(ctx, query, string(docType)).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find max document number for type "+string(docType), err)
	}
	return &number, nil
}

// CountDocumentsByCustomer counts documents of either type referencing a customer.
func (r *PgxDocumentRepository) CountDocumentsByCustomer(ctx context.Context, customerID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE customer_id = $1;`, customerID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count documents for customer "+customerID, err)
	}
	return count, nil
}

// NextDocumentSequence atomically increments and returns the per-type number
// sequence. The sequence row is seeded from the highest stored number on first
// use and never decremented, so allocations stay monotonic across deletions.
func (r *PgxDocumentRepository) NextDocumentSequence(ctx context.Context, docType domain.DocumentType) (int64, error) {
	updateQuery := `
		UPDATE document_sequences
		SET last_value = last_value + 1
		WHERE doc_type = $1
		RETURNING last_value;
	`
	var next int64
	err := r.Pool.QueryRow(ctx, updateQuery, string(docType)).Scan(&next)
	if err == nil {
		return next, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.NewAppError(500, "failed to advance sequence for type "+string(docType), err)
	}

	// First allocation for this type: seed from the highest stored number.
	maxNumber, err := r.FindMaxDocumentNumber(ctx, docType)
	if err != nil {
		return 0, err
	}
	var seed int64
	if maxNumber != nil {
		seed, err = numbering.Parse(docType, *maxNumber)
		if err != nil {
			// Corrupt stored number: abort rather than risk reissuing
			return 0, err
		}
	}

	// ON CONFLICT keeps concurrent first allocations serialized on the row.
	upsertQuery := `
		INSERT INTO document_sequences (doc_type, last_value)
		VALUES ($1, $2 + 1)
		ON CONFLICT (doc_type) DO UPDATE
		SET last_value = document_sequences.last_value + 1
		RETURNING last_value;
	`
	if err := r.Pool.QueryRow(ctx, upsertQuery, string(docType), seed).Scan(&next); err != nil {
		return 0, apperrors.NewAppError(500, "failed to seed sequence for type "+string(docType), err)
	}
	return next, nil
}
