package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
	"github.com/financeflow/financeflow_app/internal/dto"
	"github.com/financeflow/financeflow_app/internal/platform/logging"
)

type expenseService struct {
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:  expenseRepo,
		customerRepo: customerRepo,
	}
}

// Ensure expenseService implements the portssvc.ExpenseSvcFacade interface
var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func validateExpenseAmounts(amount, taxAmount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: expense amount cannot be negative", apperrors.ErrValidation)
	}
	if taxAmount.IsNegative() {
		return fmt.Errorf("%w: expense tax amount cannot be negative", apperrors.ErrValidation)
	}
	return nil
}

// verifyExpenseCustomer confirms an attributed customer belongs to the
// expense's owner. Attribution is optional; a nil customerID passes.
func (s *expenseService) verifyExpenseCustomer(ctx context.Context, customerID *string, ownerID string) error {
	if customerID == nil || *customerID == "" {
		return nil
	}
	customer, err := s.customerRepo.FindCustomerByID(ctx, *customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: customer %s does not belong to owner %s", apperrors.ErrForbidden, *customerID, ownerID)
		}
		return fmt.Errorf("failed to fetch customer %s: %w", *customerID, err)
	}
	if customer.OwnerID != ownerID {
		return fmt.Errorf("%w: customer %s does not belong to owner %s", apperrors.ErrForbidden, *customerID, ownerID)
	}
	return nil
}

func (s *expenseService) CreateExpense(ctx context.Context, ownerID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, req.Category)
	}
	if err := validateExpenseAmounts(req.Amount, req.TaxAmount); err != nil {
		return nil, err
	}
	if err := s.verifyExpenseCustomer(ctx, req.CustomerID, ownerID); err != nil {
		logger.Warn("Expense customer attribution rejected", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		OwnerID:     ownerID,
		CustomerID:  req.CustomerID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		TaxAmount:   req.TaxAmount,
		ExpenseDate: req.ExpenseDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense created successfully", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseService) loadOwnedExpense(ctx context.Context, expenseID string, actorOwnerID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if actorOwnerID != "" && expense.OwnerID != actorOwnerID {
		// Obscure existence
		return nil, apperrors.ErrNotFound
	}
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string, actorOwnerID string) (*domain.Expense, error) {
	return s.loadOwnedExpense(ctx, expenseID, actorOwnerID)
}

func (s *expenseService) ListExpenses(ctx context.Context, ownerID string) ([]domain.Expense, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	expenses, err := s.expenseRepo.ListExpensesByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list expenses", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, actorOwnerID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	expense, err := s.loadOwnedExpense(ctx, expenseID, actorOwnerID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: expense description cannot be empty", apperrors.ErrValidation)
		}
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.TaxAmount != nil {
		expense.TaxAmount = *req.TaxAmount
	}
	if err := validateExpenseAmounts(expense.Amount, expense.TaxAmount); err != nil {
		return nil, err
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.CustomerID != nil {
		if err := s.verifyExpenseCustomer(ctx, req.CustomerID, expense.OwnerID); err != nil {
			return nil, err
		}
		expense.CustomerID = req.CustomerID
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.LastUpdatedAt = time.Now().UTC()
	if actorOwnerID != "" {
		expense.LastUpdatedBy = actorOwnerID
	}

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	logger.Info("Expense updated successfully", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, actorOwnerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.loadOwnedExpense(ctx, expenseID, actorOwnerID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	logger.Info("Expense deleted successfully", slog.String("expense_id", expenseID))
	return nil
}
