package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// NewReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetDocumentSummaryData retrieves per-status counts and totals for one
// document type. An empty ownerID aggregates across all owners.
func (r *reportingRepository) GetDocumentSummaryData(ctx context.Context, docType domain.DocumentType, ownerID string) ([]domain.StatusSummaryRow, error) {
	query := `
		SELECT
			status,
			COUNT(*) AS doc_count,
			COALESCE(SUM(total), 0) AS total_amount
		FROM documents
		WHERE doc_type = $1
			AND ($2 = '' OR owner_id = $2)
		GROUP BY status
		ORDER BY status
	`

	rows, err := r.Pool.Query(ctx, query, string(docType), ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying document summary data: %w", err)
	}
	defer rows.Close()

	var result []domain.StatusSummaryRow
	for rows.Next() {
		var status string
		var count int64
		var total decimal.Decimal

		if err := rows.Scan(&status, &count, &total); err != nil {
			return nil, fmt.Errorf("error scanning document summary row: %w", err)
		}

		result = append(result, domain.StatusSummaryRow{
			Status: domain.DocumentStatus(status),
			Count:  count,
			Total:  total,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document summary rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.StatusSummaryRow{}, nil
	}

	return result, nil
}

// GetFinancialTotalsData retrieves the raw numbers behind the financial
// overview in one round trip. Revenue sums the totals of PAID invoices;
// pending counts invoices sitting in PENDING or OVERDUE.
func (r *reportingRepository) GetFinancialTotalsData(ctx context.Context, ownerID string) (*domain.FinancialTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM documents
				WHERE doc_type = 'INVOICE' AND ($1 = '' OR owner_id = $1)) AS invoice_count,
			(SELECT COUNT(*) FROM documents
				WHERE doc_type = 'ESTIMATE' AND ($1 = '' OR owner_id = $1)) AS estimate_count,
			(SELECT COUNT(*) FROM customers
				WHERE ($1 = '' OR owner_id = $1)) AS customer_count,
			(SELECT COUNT(*) FROM documents
				WHERE doc_type = 'INVOICE' AND status IN ('PENDING', 'OVERDUE')
				AND ($1 = '' OR owner_id = $1)) AS pending_invoice_count,
			(SELECT COALESCE(SUM(total), 0) FROM documents
				WHERE doc_type = 'INVOICE' AND status = 'PAID'
				AND ($1 = '' OR owner_id = $1)) AS total_revenue,
			(SELECT COALESCE(SUM(amount), 0) FROM expenses
				WHERE ($1 = '' OR owner_id = $1)) AS total_expenses
	`

	var totals domain.FinancialTotals
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&totals.InvoiceCount,
		&totals.EstimateCount,
		&totals.CustomerCount,
		&totals.PendingInvoiceCount,
		&totals.TotalRevenue,
		&totals.TotalExpenses,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying financial totals: %w", err)
	}

	return &totals, nil
}
