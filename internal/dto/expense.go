package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/utils/billing"
)

// CreateExpenseRequest carries the payload for recording an expense.
type CreateExpenseRequest struct {
	Category    domain.ExpenseCategory `json:"category" validate:"required"`
	Description string                 `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal        `json:"amount"`
	TaxAmount   decimal.Decimal        `json:"taxAmount"`
	ExpenseDate time.Time              `json:"expenseDate" validate:"required"`
	CustomerID  *string                `json:"customerID"`
	Notes       string                 `json:"notes"`
}

// UpdateExpenseRequest carries optional field updates for an expense.
type UpdateExpenseRequest struct {
	Category    *domain.ExpenseCategory `json:"category"`
	Description *string                 `json:"description" validate:"omitempty,max=500"`
	Amount      *decimal.Decimal        `json:"amount"`
	TaxAmount   *decimal.Decimal        `json:"taxAmount"`
	ExpenseDate *time.Time              `json:"expenseDate"`
	CustomerID  *string                 `json:"customerID"`
	Notes       *string                 `json:"notes"`
}

// ExpenseResponse is the rendered form of an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	ExpenseDate time.Time       `json:"expenseDate"`
	CustomerID  *string         `json:"customerID,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}

// ToExpenseResponse converts a domain Expense to its response form.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Category:    string(e.Category),
		Description: e.Description,
		Amount:      billing.RoundMoney(e.Amount),
		TaxAmount:   billing.RoundMoney(e.TaxAmount),
		ExpenseDate: e.ExpenseDate,
		CustomerID:  e.CustomerID,
		Notes:       e.Notes,
	}
}
