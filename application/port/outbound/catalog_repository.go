package outbound

import (
	"context"
	"errors"

	"github.com/seastock/seastock/domain/entity"
)

var ErrItemNotFound = errors.New("catalog item not found")

// CatalogRepository provides access to the item catalog. Every read filters
// on the active flag; soft-deleted items are invisible.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]*entity.CatalogItem, error)
	FindByRoleCategory(ctx context.Context, role string) ([]*entity.CatalogItem, error)
	FindByCategory(ctx context.Context, category string) ([]*entity.CatalogItem, error)
	FindByID(ctx context.Context, id int64) (*entity.CatalogItem, error)
	SearchByName(ctx context.Context, term string) ([]*entity.CatalogItem, error)
	Create(ctx context.Context, item *entity.CatalogItem) (int64, error)
}
