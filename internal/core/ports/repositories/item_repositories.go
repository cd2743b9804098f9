package repositories

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
)

// ItemReader defines read operations for catalog item data
type ItemReader interface {
	// FindItemByID retrieves a specific item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.Item, error)

	// ListItemsByOwner retrieves all items belonging to an owner.
	// An empty ownerID lists items across all owners.
	ListItemsByOwner(ctx context.Context, ownerID string) ([]domain.Item, error)
}

// ItemWriter defines write operations for catalog item data
type ItemWriter interface {
	// SaveItem persists a new item.
	SaveItem(ctx context.Context, item domain.Item) error

	// UpdateItem updates an existing item's details.
	UpdateItem(ctx context.Context, item domain.Item) error

	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, itemID string) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
}
