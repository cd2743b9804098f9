package repositories

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// ReportingRepository defines read-only aggregation queries for dashboards.
type ReportingRepository interface {
	// GetDocumentSummaryData retrieves per-status counts and totals for one
	// document type. An empty ownerID aggregates across all owners.
	GetDocumentSummaryData(ctx context.Context, docType domain.DocumentType, ownerID string) ([]domain.StatusSummaryRow, error)

	// GetFinancialTotalsData retrieves the raw numbers behind the financial
	// overview: paid-invoice revenue, the expense sum, and entity counts.
	// An empty ownerID aggregates across all owners.
	GetFinancialTotalsData(ctx context.Context, ownerID string) (*domain.FinancialTotals, error)
}
