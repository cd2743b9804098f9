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

type PgxTaxTypeRepository struct {
	BaseRepository
}

// newPgxTaxTypeRepository creates a new repository for tax type data.
func newPgxTaxTypeRepository(pool *pgxpool.Pool) portsrepo.TaxTypeRepositoryFacade {
	return &PgxTaxTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTaxTypeRepository implements portsrepo.TaxTypeRepositoryFacade
var _ portsrepo.TaxTypeRepositoryFacade = (*PgxTaxTypeRepository)(nil)

// SaveTaxType persists a new tax type.
func (r *PgxTaxTypeRepository) SaveTaxType(ctx context.Context, taxType domain.TaxType) error {
	m := mapping.ToModelTaxType(taxType)
	query := `
		INSERT INTO tax_types (
			tax_type_id, owner_id, title, rate,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TaxTypeID,
		m.OwnerID,
		m.Title,
		m.Rate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert tax type "+m.TaxTypeID, err)
	}
	return nil
}

// FindTaxTypeByID retrieves a tax type by its ID.
func (r *PgxTaxTypeRepository) FindTaxTypeByID(ctx context.Context, taxTypeID string) (*domain.TaxType, error) {
	query := `
		SELECT tax_type_id, owner_id, title, rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM tax_types
		WHERE tax_type_id = $1;
	`
	var m models.TaxType
	err := r.Pool.QueryRow(ctx, query, taxTypeID).Scan(
		&m.TaxTypeID,
		&m.OwnerID,
		&m.Title,
		&m.Rate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tax type by ID "+taxTypeID, err)
	}

	domainTaxType := mapping.ToDomainTaxType(m)
	return &domainTaxType, nil
}

// ListTaxTypesByOwner retrieves all tax types belonging to an owner. An empty
// ownerID lists tax types across all owners.
func (r *PgxTaxTypeRepository) ListTaxTypesByOwner(ctx context.Context, ownerID string) ([]domain.TaxType, error) {
	query := `
		SELECT tax_type_id, owner_id, title, rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM tax_types
		WHERE ($1 = '' OR owner_id = $1)
		ORDER BY title;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax types", err)
	}
	defer rows.Close()

	taxTypes := []domain.TaxType{}
	for rows.Next() {
		var m models.TaxType
		err := rows.Scan(
			&m.TaxTypeID,
			&m.OwnerID,
			&m.Title,
			&m.Rate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax type row", err)
		}
		taxTypes = append(taxTypes, mapping.ToDomainTaxType(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax type rows", err)
	}

	return taxTypes, nil
}

// UpdateTaxType updates an existing tax type's details.
func (r *PgxTaxTypeRepository) UpdateTaxType(ctx context.Context, taxType domain.TaxType) error {
	m := mapping.ToModelTaxType(taxType)
	query := `
		UPDATE tax_types
		SET title = $2,
		    rate = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE tax_type_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.TaxTypeID,
		m.Title,
		m.Rate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update tax type "+m.TaxTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTaxType removes a tax type.
func (r *PgxTaxTypeRepository) DeleteTaxType(ctx context.Context, taxTypeID string) error {
	query := `DELETE FROM tax_types WHERE tax_type_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, taxTypeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete tax type "+taxTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
