package services

import (
	"context"

	"github.com/financeflow/financeflow_app/internal/core/domain"
	"github.com/financeflow/financeflow_app/internal/dto"
)

// ItemSvcFacade defines owner-scoped CRUD for catalog items.
type ItemSvcFacade interface {
	// CreateItem persists a new catalog item under the given owner.
	CreateItem(ctx context.Context, ownerID string, req dto.CreateItemRequest) (*domain.Item, error)

	// GetItemByID retrieves an item; scoped actors only see their own.
	GetItemByID(ctx context.Context, itemID string, actorOwnerID string) (*domain.Item, error)

	// ListItems retrieves the items of an owner (all owners when empty).
	ListItems(ctx context.Context, ownerID string) ([]domain.Item, error)

	// UpdateItem applies partial updates to an item.
	UpdateItem(ctx context.Context, itemID string, actorOwnerID string, req dto.UpdateItemRequest) (*domain.Item, error)

	// DeleteItem removes an item. Existing document lines keep their copied
	// description and price.
	DeleteItem(ctx context.Context, itemID string, actorOwnerID string) error
}
