package services

import (
	"context"
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

var itemMaxTaxRate = decimal.NewFromInt(100)

type itemService struct {
	itemRepo portsrepo.ItemRepositoryFacade
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo portsrepo.ItemRepositoryFacade) portssvc.ItemSvcFacade {
	return &itemService{itemRepo: itemRepo}
}

// Ensure itemService implements the portssvc.ItemSvcFacade interface
var _ portssvc.ItemSvcFacade = (*itemService)(nil)

func validateItemPricing(unitPrice, taxRate decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(itemMaxTaxRate) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

func (s *itemService) CreateItem(ctx context.Context, ownerID string, req dto.CreateItemRequest) (*domain.Item, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := validateItemPricing(req.UnitPrice, req.TaxRate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := domain.Item{
		ItemID:      uuid.NewString(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		TaxRate:     req.TaxRate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.itemRepo.SaveItem(ctx, item); err != nil {
		logger.Error("Failed to save item", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	logger.Info("Item created successfully", slog.String("item_id", item.ItemID))
	return &item, nil
}

func (s *itemService) loadOwnedItem(ctx context.Context, itemID string, actorOwnerID string) (*domain.Item, error) {
	item, err := s.itemRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if actorOwnerID != "" && item.OwnerID != actorOwnerID {
		// Obscure existence
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

func (s *itemService) GetItemByID(ctx context.Context, itemID string, actorOwnerID string) (*domain.Item, error) {
	return s.loadOwnedItem(ctx, itemID, actorOwnerID)
}

func (s *itemService) ListItems(ctx context.Context, ownerID string) ([]domain.Item, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	items, err := s.itemRepo.ListItemsByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list items", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to retrieve items: %w", err)
	}
	return items, nil
}

func (s *itemService) UpdateItem(ctx context.Context, itemID string, actorOwnerID string, req dto.UpdateItemRequest) (*domain.Item, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	item, err := s.loadOwnedItem(ctx, itemID, actorOwnerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: item name cannot be empty", apperrors.ErrValidation)
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.TaxRate != nil {
		item.TaxRate = *req.TaxRate
	}
	if err := validateItemPricing(item.UnitPrice, item.TaxRate); err != nil {
		return nil, err
	}
	item.LastUpdatedAt = time.Now().UTC()
	if actorOwnerID != "" {
		item.LastUpdatedBy = actorOwnerID
	}

	if err := s.itemRepo.UpdateItem(ctx, *item); err != nil {
		logger.Error("Failed to update item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	logger.Info("Item updated successfully", slog.String("item_id", itemID))
	return item, nil
}

// DeleteItem removes a catalog item. Document lines that referenced it keep
// their copied description and price, so no reference check is needed.
func (s *itemService) DeleteItem(ctx context.Context, itemID string, actorOwnerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.loadOwnedItem(ctx, itemID, actorOwnerID); err != nil {
		return err
	}

	if err := s.itemRepo.DeleteItem(ctx, itemID); err != nil {
		logger.Error("Failed to delete item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return fmt.Errorf("failed to delete item: %w", err)
	}

	logger.Info("Item deleted successfully", slog.String("item_id", itemID))
	return nil
}
