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

type taxTypeService struct {
	taxTypeRepo portsrepo.TaxTypeRepositoryFacade
}

// NewTaxTypeService creates a new TaxTypeService.
func NewTaxTypeService(taxTypeRepo portsrepo.TaxTypeRepositoryFacade) portssvc.TaxTypeSvcFacade {
	return &taxTypeService{taxTypeRepo: taxTypeRepo}
}

// Ensure taxTypeService implements the portssvc.TaxTypeSvcFacade interface
var _ portssvc.TaxTypeSvcFacade = (*taxTypeService)(nil)

func validateTaxTypeRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(itemMaxTaxRate) {
		return fmt.Errorf("%w: tax rate must be between 0 and 100", apperrors.ErrValidation)
	}
	return nil
}

func (s *taxTypeService) CreateTaxType(ctx context.Context, ownerID string, req dto.CreateTaxTypeRequest) (*domain.TaxType, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner is required", apperrors.ErrValidation)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if err := validateTaxTypeRate(req.Rate); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	taxType := domain.TaxType{
		TaxTypeID: uuid.NewString(),
		OwnerID:   ownerID,
		Title:     req.Title,
		Rate:      req.Rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	if err := s.taxTypeRepo.SaveTaxType(ctx, taxType); err != nil {
		logger.Error("Failed to save tax type", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to save tax type: %w", err)
	}

	logger.Info("Tax type created successfully", slog.String("tax_type_id", taxType.TaxTypeID))
	return &taxType, nil
}

func (s *taxTypeService) loadOwnedTaxType(ctx context.Context, taxTypeID string, actorOwnerID string) (*domain.TaxType, error) {
	taxType, err := s.taxTypeRepo.FindTaxTypeByID(ctx, taxTypeID)
	if err != nil {
		return nil, err
	}
	if actorOwnerID != "" && taxType.OwnerID != actorOwnerID {
		// Obscure existence
		return nil, apperrors.ErrNotFound
	}
	return taxType, nil
}

func (s *taxTypeService) GetTaxTypeByID(ctx context.Context, taxTypeID string, actorOwnerID string) (*domain.TaxType, error) {
	return s.loadOwnedTaxType(ctx, taxTypeID, actorOwnerID)
}

func (s *taxTypeService) ListTaxTypes(ctx context.Context, ownerID string) ([]domain.TaxType, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	taxTypes, err := s.taxTypeRepo.ListTaxTypesByOwner(ctx, ownerID)
	if err != nil {
		logger.Error("Failed to list tax types", slog.String("error", err.Error()), slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to retrieve tax types: %w", err)
	}
	return taxTypes, nil
}

func (s *taxTypeService) UpdateTaxType(ctx context.Context, taxTypeID string, actorOwnerID string, req dto.UpdateTaxTypeRequest) (*domain.TaxType, error) {
	logger := logging.GetLoggerFromCtx(ctx)

	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	taxType, err := s.loadOwnedTaxType(ctx, taxTypeID, actorOwnerID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: tax type title cannot be empty", apperrors.ErrValidation)
		}
		taxType.Title = *req.Title
	}
	if req.Rate != nil {
		if err := validateTaxTypeRate(*req.Rate); err != nil {
			return nil, err
		}
		taxType.Rate = *req.Rate
	}
	taxType.LastUpdatedAt = time.Now().UTC()
	if actorOwnerID != "" {
		taxType.LastUpdatedBy = actorOwnerID
	}

	if err := s.taxTypeRepo.UpdateTaxType(ctx, *taxType); err != nil {
		logger.Error("Failed to update tax type", slog.String("error", err.Error()), slog.String("tax_type_id", taxTypeID))
		return nil, fmt.Errorf("failed to update tax type: %w", err)
	}

	logger.Info("Tax type updated successfully", slog.String("tax_type_id", taxTypeID))
	return taxType, nil
}

// DeleteTaxType removes a tax type. Document lines copied the rate at billing
// time, so no reference check is needed.
func (s *taxTypeService) DeleteTaxType(ctx context.Context, taxTypeID string, actorOwnerID string) error {
	logger := logging.GetLoggerFromCtx(ctx)

	if _, err := s.loadOwnedTaxType(ctx, taxTypeID, actorOwnerID); err != nil {
		return err
	}

	if err := s.taxTypeRepo.DeleteTaxType(ctx, taxTypeID); err != nil {
		logger.Error("Failed to delete tax type", slog.String("error", err.Error()), slog.String("tax_type_id", taxTypeID))
		return fmt.Errorf("failed to delete tax type: %w", err)
	}

	logger.Info("Tax type deleted successfully", slog.String("tax_type_id", taxTypeID))
	return nil
}
