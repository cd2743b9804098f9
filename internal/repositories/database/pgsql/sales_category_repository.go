package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/financeflow/financeflow_app/internal/apperrors"
	"github.com/financeflow/financeflow_app/internal/core/domain"
	portsrepo "github.com/financeflow/financeflow_app/internal/core/ports/repositories"
	"github.com/financeflow/financeflow_app/internal/models"
	"github.com/financeflow/financeflow_app/internal/utils/mapping"
)

type PgxSalesCategoryRepository struct {
	BaseRepository
}

// newPgxSalesCategoryRepository creates a new repository for sales category data.
func newPgxSalesCategoryRepository(pool *pgxpool.Pool) portsrepo.SalesCategoryRepositoryFacade {
	return &PgxSalesCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxSalesCategoryRepository implements portsrepo.SalesCategoryRepositoryFacade
var _ portsrepo.SalesCategoryRepositoryFacade = (*PgxSalesCategoryRepository)(nil)

// SaveSalesCategory persists a new sales category.
func (r *PgxSalesCategoryRepository) SaveSalesCategory(ctx context.Context, category domain.SalesCategory) error {
	m := mapping.ToModelSalesCategory(category)
	query := `
		INSERT INTO sales_categories (
			sales_category_id, owner_id, name, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SalesCategoryID,
		m.OwnerID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert sales category "+m.SalesCategoryID, err)
	}
	return nil
}

// FindSalesCategoryByID retrieves a sales category by its ID.
func (r *PgxSalesCategoryRepository) FindSalesCategoryByID(ctx context.Context, salesCategoryID string) (*domain.SalesCategory, error) {
	query := `
		SELECT sales_category_id, owner_id, name, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sales_categories
		WHERE sales_category_id = $1;
	`
	var m models.SalesCategory
	err := r.Pool.QueryRow(ctx, query, salesCategoryID).Scan(
		&m.SalesCategoryID,
		&m.OwnerID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sales category by ID "+salesCategoryID, err)
	}

	domainCategory := mapping.ToDomainSalesCategory(m)
	return &domainCategory, nil
}

// ListSalesCategoriesByOwner retrieves all sales categories belonging to an
// owner. An empty ownerID lists categories across all owners.
func (r *PgxSalesCategoryRepository) ListSalesCategoriesByOwner(ctx context.Context, ownerID string) ([]domain.SalesCategory, error) {
	query := `
		SELECT sales_category_id, owner_id, name, description,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM sales_categories
		WHERE ($1 = '' OR owner_id = $1)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales categories", err)
	}
	defer rows.Close()

	categories := []domain.SalesCategory{}
	for rows.Next() {
		var m models.SalesCategory
		err := rows.Scan(
			&m.SalesCategoryID,
			&m.OwnerID,
			&m.Name,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sales category row", err)
		}
		categories = append(categories, mapping.ToDomainSalesCategory(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sales category rows", err)
	}

	return categories, nil
}

// UpdateSalesCategory updates an existing sales category's details.
func (r *PgxSalesCategoryRepository) UpdateSalesCategory(ctx context.Context, category domain.SalesCategory) error {
	m := mapping.ToModelSalesCategory(category)
	query := `
		UPDATE sales_categories
		SET name = $2,
		    description = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE sales_category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.SalesCategoryID,
		m.Name,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sales category "+m.SalesCategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSalesCategory removes a sales category. The documents table keeps the
// reference nullable with ON DELETE SET NULL, so existing documents are kept.
func (r *PgxSalesCategoryRepository) DeleteSalesCategory(ctx context.Context, salesCategoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sales_categories WHERE sales_category_id = $1;`, salesCategoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete sales category "+salesCategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
