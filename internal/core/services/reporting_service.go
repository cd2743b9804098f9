package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
	"github.com/financeflow/financeflow_app/internal/dto"
	"github.com/financeflow/financeflow_app/internal/platform/logging"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetDocumentSummary aggregates per-status rows into the dashboard summary
// for one document type. Amounts are rounded for presentation.
func (s *reportingService) GetDocumentSummary(ctx context.Context, docType domain.DocumentType, ownerID string) (*dto.DocumentSummaryResponse, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	rows, err := s.reportingRepo.GetDocumentSummaryData(ctx, docType, ownerID)
	if err != nil {
		logger.Error("Failed to fetch document summary data", slog.String("error", err.Error()), slog.String("doc_type", string(docType)))
		return nil, fmt.Errorf("failed to retrieve %s summary: %w", docType, err)
	}

	summary := domain.DocumentSummary{
		DocType:    docType,
		GrandTotal: decimal.Zero,
		ByStatus:   rows,
	}
	for _, row := range rows {
		summary.Count += row.Count
		summary.GrandTotal = summary.GrandTotal.Add(row.Total)
	}

	logger.Debug("Document summary computed", slog.String("doc_type", string(docType)), slog.Int64("count", summary.Count))
	resp := dto.ToDocumentSummaryResponse(&summary)
	return &resp, nil
}

// GetFinancialOverview returns the dashboard headline figures. Revenue counts
// paid invoices only; profit is revenue minus the expense sum.
func (s *reportingService) GetFinancialOverview(ctx context.Context, ownerID string) (*dto.FinancialOverviewResponse, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	totals, err := s.reportingRepo.GetFinancialTotalsData(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to fetch financial totals", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to retrieve financial overview: %w", err)
	}

	resp := dto.ToFinancialOverviewResponse(*totals)
	logger.Debug("Financial overview computed", slog.String("owner_id", ownerID), slog.Int64("invoice_count", totals.InvoiceCount))
	return &resp, nil
}
