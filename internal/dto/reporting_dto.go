package dto

import (
	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/utils/billing"
)

// StatusSummaryRowResponse represents one status bucket in a document summary.
type StatusSummaryRowResponse struct {
	Status string          `json:"status"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DocumentSummaryResponse represents the dashboard aggregate for one document type.
type DocumentSummaryResponse struct {
	DocType    string                     `json:"docType"`
	Count      int64                      `json:"count"`
	GrandTotal decimal.Decimal            `json:"grandTotal"`
	ByStatus   []StatusSummaryRowResponse `json:"byStatus"`
}

// FinancialOverviewResponse is the dashboard headline: paid-invoice revenue,
// total expenses, and the resulting profit, alongside entity counts.
type FinancialOverviewResponse struct {
	TotalInvoices   int64           `json:"totalInvoices"`
	TotalEstimates  int64           `json:"totalEstimates"`
	TotalCustomers  int64           `json:"totalCustomers"`
	PendingInvoices int64           `json:"pendingInvoices"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	TotalProfit     decimal.Decimal `json:"totalProfit"`
}

// ToFinancialOverviewResponse converts raw financial totals to their response
// form. Profit is revenue minus expenses and may be negative.
func ToFinancialOverviewResponse(t domain.FinancialTotals) FinancialOverviewResponse {
	return FinancialOverviewResponse{
		TotalInvoices:   t.InvoiceCount,
		TotalEstimates:  t.EstimateCount,
		TotalCustomers:  t.CustomerCount,
		PendingInvoices: t.PendingInvoiceCount,
		TotalRevenue:    billing.RoundMoney(t.TotalRevenue),
		TotalExpenses:   billing.RoundMoney(t.TotalExpenses),
		TotalProfit:     billing.RoundMoney(t.TotalRevenue.Sub(t.TotalExpenses)),
	}
}

// ToDocumentSummaryResponse converts a domain DocumentSummary to its response form.
func ToDocumentSummaryResponse(s *domain.DocumentSummary) DocumentSummaryResponse {
	resp := DocumentSummaryResponse{
		DocType:    string(s.DocType),
		Count:      s.Count,
		GrandTotal: billing.RoundMoney(s.GrandTotal),
		ByStatus:   make([]StatusSummaryRowResponse, len(s.ByStatus)),
	}
	for i, row := range s.ByStatus {
		resp.ByStatus[i] = StatusSummaryRowResponse{
			Status: string(row.Status),
			Count:  row.Count,
			Total:  billing.RoundMoney(row.Total),
		}
	}
	return resp
}
