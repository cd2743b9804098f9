package domain

import (
	"github.com/shopspring/decimal"
)

// StatusSummaryRow aggregates the documents of one type sitting in one status.
type StatusSummaryRow struct {
	Status DocumentStatus  `json:"status"`
	Count  int64           `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// DocumentSummary is the per-owner dashboard aggregate for one document type.
type DocumentSummary struct {
	DocType    DocumentType       `json:"docType"`
	Count      int64              `json:"count"`
	GrandTotal decimal.Decimal    `json:"grandTotal"`
	ByStatus   []StatusSummaryRow `json:"byStatus"`
}

// FinancialTotals is the raw aggregate behind the financial overview:
// revenue from paid invoices, the expense sum, and headline counts.
type FinancialTotals struct {
	InvoiceCount        int64           `json:"invoiceCount"`
	EstimateCount       int64           `json:"estimateCount"`
	CustomerCount       int64           `json:"customerCount"`
	PendingInvoiceCount int64           `json:"pendingInvoiceCount"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	TotalExpenses       decimal.Decimal `json:"totalExpenses"`
}
