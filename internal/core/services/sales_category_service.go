package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	portssvc "github.com/financeflow/financeflow_app/internal/core/ports/services"
	"github.com/financeflow/financeflow_app/internal/dto"
	"github.com/financeflow/financeflow_app/internal/platform/logging"
)

type salesCategoryService struct {
	categoryRepo portsrepo.SalesCategoryRepositoryFacade
}

// NewSalesCategoryService creates a new SalesCategoryService.
func NewSalesCategoryService(categoryRepo portsrepo.SalesCategoryRepositoryFacade) portssvc.SalesCategorySvcFacade {
	return &salesCategoryService{categoryRepo: categoryRepo}
}

// Ensure salesCategoryService implements the portssvc.SalesCategorySvcFacade interface
var _ portssvc.SalesCategorySvcFacade = (*salesCategoryService)(nil)

func (s *salesCategoryService) CreateSalesCategory(ctx context.Context, ownerID string, req dto.CreateSalesCategoryRequest) (*domain.SalesCategory, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := domain.SalesCategory{
		SalesCategoryID: uuid.NewString(),
		OwnerID:         ownerID,
		Name:            req.Name,
		Description:     req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.categoryRepo.SaveSalesCategory(ctx, category); err != nil {
		logger.Error("Failed to save sales category", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save sales category: %w", err)
	}

	logger.Info("Sales category created successfully", slog.String("sales_category_id", category.SalesCategoryID))
	return &category, nil
}

func (s *salesCategoryService) loadOwnedCategory(ctx context.Context, salesCategoryID string, actorOwnerID string) (*domain.SalesCategory, error) {
	category, err := s.categoryRepo.FindSalesCategoryByID(ctx, salesCategoryID)
	if err != nil {
		return nil, err
	}
	if actorOwnerID != "" && category.OwnerID != actorOwnerID {
		// Obscure existence
		return nil, apperrors.ErrNotFound
	}
	return category, nil
}

func (s *salesCategoryService) GetSalesCategoryByID(ctx context.Context, salesCategoryID string, actorOwnerID string) (*domain.SalesCategory, error) {
	return s.loadOwnedCategory(ctx, salesCategoryID, actorOwnerID)
}

func (s *salesCategoryService) ListSalesCategories(ctx context.Context, ownerID string) ([]domain.SalesCategory, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	categories, err := s.categoryRepo.ListSalesCategoriesByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list sales categories", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to retrieve sales categories: %w", err)
	}
	return categories, nil
}

func (s *salesCategoryService) UpdateSalesCategory(ctx context.Context, salesCategoryID string, actorOwnerID string, req dto.UpdateSalesCategoryRequest) (*domain.SalesCategory, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	category, err := s.loadOwnedCategory(ctx, salesCategoryID, actorOwnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: sales category name cannot be empty", apperrors.ErrValidation)
		}
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.LastUpdatedAt = time.Now().UTC()
	if actorOwnerID != "" {
		category.LastUpdatedBy = actorOwnerID
	}

	if err := s.categoryRepo.UpdateSalesCategory(ctx, *category); err != nil {
		logger.Error("Failed to update sales category", slog.String("error", err.Error()), slog.String("sales_category_id", salesCategoryID))
		return nil, fmt.Errorf("failed to update sales category: %w", err)
	}

	logger.Info("Sales category updated successfully", slog.String("sales_category_id", salesCategoryID))
	return category, nil
}

// DeleteSalesCategory removes a category. Documents keep a nullable reference,
// so the database clears it on delete rather than blocking.
func (s *salesCategoryService) DeleteSalesCategory(ctx context.Context, salesCategoryID string, actorOwnerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.loadOwnedCategory(ctx, salesCategoryID, actorOwnerID); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteSalesCategory(ctx, salesCategoryID); err != nil {
		logger.Error("Failed to delete sales category", slog.String("error", err.Error()), slog.String("sales_category_id", salesCategoryID))
		return fmt.Errorf("failed to delete sales category: %w", err)
	}

	logger.Info("Sales category deleted successfully", slog.String("sales_category_id", salesCategoryID))
	return nil
}
