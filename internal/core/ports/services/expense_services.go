package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// ExpenseSvcFacade defines owner-scoped CRUD for expenses.
type ExpenseSvcFacade interface {
	// CreateExpense records a new expense under the given owner. When a
	// customer is attributed, it must belong to the same owner.
	CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// GetExpenseByID retrieves an expense; scoped actors only see their own.
	GetExpenseByID(ctx context.Context, expenseID string, actorOwnerID string) (*domain.Expense, error)

	// ListExpenses retrieves the expenses of an owner (all owners when
	// empty), most recent expense date first.
	ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error)

	// UpdateExpense applies partial updates to an expense.
	UpdateExpense(ctx context.Context, expenseID string, actorOwnerID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string, actorOwnerID string) error
}
