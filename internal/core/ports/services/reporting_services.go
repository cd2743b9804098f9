package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// ReportingSvcFacade defines dashboard aggregation reads.
type ReportingSvcFacade interface {
	// GetDocumentSummary returns per-status counts and totals for one
	// document type, scoped to an owner (all owners when empty).
	GetDocumentSummary(ctx context.Context, docType domain.DocumentType, ownerID string) (*dto.DocumentSummaryResponse, error)

	// GetFinancialOverview returns the dashboard headline figures:
	// paid-invoice revenue, total expenses, profit, and entity counts,
	// scoped to an owner (all owners when empty).
	GetFinancialOverview(ctx context.Context, ownerID string) (*dto.FinancialOverviewResponse, error)
}
