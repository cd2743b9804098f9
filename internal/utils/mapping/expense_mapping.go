package mapping

import (
	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:   d.ExpenseID,
		OwnerID:     d.OwnerID,
		CustomerID:  d.CustomerID,
		Category:    string(d.Category),
		Description: d.Description,
		Amount:      d.Amount,
		TaxAmount:   d.TaxAmount,
		ExpenseDate: d.ExpenseDate,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:   m.ExpenseID,
		OwnerID:     m.OwnerID,
		CustomerID:  m.CustomerID,
		Category:    domain.ExpenseCategory(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		TaxAmount:   m.TaxAmount,
		ExpenseDate: m.ExpenseDate,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
