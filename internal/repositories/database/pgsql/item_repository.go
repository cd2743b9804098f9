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

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for catalog item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepositoryFacade {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxItemRepository implements portsrepo.ItemRepositoryFacade
var _ portsrepo.ItemRepositoryFacade = (*PgxItemRepository)(nil)

// SaveItem persists a new catalog item.
func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		INSERT INTO items (
			item_id, owner_id, name, description, unit_price, tax_rate,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.OwnerID,
		m.Name,
		m.Description,
		m.UnitPrice,
		m.TaxRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert item "+m.ItemID, err)
	}
	return nil
}

// FindItemByID retrieves a catalog item by its ID.
func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	query := `
		SELECT item_id, owner_id, name, description, unit_price, tax_rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM items
		WHERE item_id = $1;
	`
	var m models.Item
	err := r.Pool.QueryRow(ctx, query, itemID).Scan(
		&m.ItemID,
		&m.OwnerID,
		&m.Name,
		&m.Description,
		&m.UnitPrice,
		&m.TaxRate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find item by ID "+itemID, err)
	}

	domainItem := mapping.ToDomainItem(m)
	return &domainItem, nil
}

// ListItemsByOwner retrieves all catalog items belonging to an owner. An empty
// ownerID lists items across all owners.
func (r *PgxItemRepository) ListItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error) {
	query := `
		SELECT item_id, owner_id, name, description, unit_price, tax_rate,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM items
		WHERE ($1 = '' OR owner_id = $1)
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var m models.Item
		err := rows.Scan(
			&m.ItemID,
			&m.OwnerID,
			&m.Name,
			&m.Description,
			&m.UnitPrice,
			&m.TaxRate,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		items = append(items, mapping.ToDomainItem(m))
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows", err)
	}

	return items, nil
}

// UpdateItem updates an existing catalog item's details.
func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	m := mapping.ToModelItem(item)
	query := `
		UPDATE items
		SET name = $2,
		    description = $3,
		    unit_price = $4,
		    tax_rate = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ItemID,
		m.Name,
		m.Description,
		m.UnitPrice,
		m.TaxRate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update item "+m.ItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteItem removes a catalog item. Line items keep their copied snapshot of
// the description and price, so no cascade is needed.
func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE item_id = $1;`, itemID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete item "+itemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
