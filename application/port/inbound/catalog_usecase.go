package inbound

import (
	"context"

	"github.com/seastock/seastock/domain/entity"
)

type CreateItemRequest struct {
	ItemName     string `json:"item_name"`
	Category     string `json:"category"`
	Unit         string `json:"unit"`
	RoleCategory string `json:"role_category"`
	Description  string `json:"description"`
}

// CatalogUseCase exposes the item catalog. Reads only ever see active items.
type CatalogUseCase interface {
	List(ctx context.Context) ([]*entity.CatalogItem, error)
	ListByRoleCategory(ctx context.Context, role string) ([]*entity.CatalogItem, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.CatalogItem, error)
	Search(ctx context.Context, term string) ([]*entity.CatalogItem, error)
	GetByID(ctx context.Context, id int64) (*entity.CatalogItem, error)
	Create(ctx context.Context, req CreateItemRequest, creatorID string) (int64, error)
}
