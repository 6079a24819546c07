package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/seastock/seastock/application/port/inbound"
	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
	"github.com/seastock/seastock/infrastructure/service/logger"
	"github.com/seastock/seastock/pkg/apperror"
)

type CatalogUseCase struct {
	catalogRepo outbound.CatalogRepository
	logger      logger.Logger
}

func NewCatalogUseCase(catalogRepo outbound.CatalogRepository, log logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		logger:      log,
	}
}

func (uc *CatalogUseCase) List(ctx context.Context) ([]*entity.CatalogItem, error) {
	items, err := uc.catalogRepo.FindAll(ctx)
	if err != nil {
		uc.logger.Error(ctx, "catalog list failed", err, nil)
		return nil, apperror.ErrInternalServer
	}
	return items, nil
}

func (uc *CatalogUseCase) ListByRoleCategory(ctx context.Context, role string) ([]*entity.CatalogItem, error) {
	items, err := uc.catalogRepo.FindByRoleCategory(ctx, role)
	if err != nil {
		uc.logger.Error(ctx, "catalog list by role failed", err, map[string]interface{}{
			"role_category": role,
		})
		return nil, apperror.ErrInternalServer
	}
	return items, nil
}

func (uc *CatalogUseCase) ListByCategory(ctx context.Context, category string) ([]*entity.CatalogItem, error) {
	items, err := uc.catalogRepo.FindByCategory(ctx, category)
	if err != nil {
		uc.logger.Error(ctx, "catalog list by category failed", err, map[string]interface{}{
			"category": category,
		})
		return nil, apperror.ErrInternalServer
	}
	return items, nil
}

func (uc *CatalogUseCase) Search(ctx context.Context, term string) ([]*entity.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, apperror.NewValidation("search term is required")
	}
	items, err := uc.catalogRepo.SearchByName(ctx, term)
	if err != nil {
		uc.logger.Error(ctx, "catalog search failed", err, nil)
		return nil, apperror.ErrInternalServer
	}
	return items, nil
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, id int64) (*entity.CatalogItem, error) {
	item, err := uc.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, outbound.ErrItemNotFound) {
			return nil, apperror.NewNotFound("Item not found")
		}
		uc.logger.Error(ctx, "catalog item lookup failed", err, map[string]interface{}{
			"item_id": id,
		})
		return nil, apperror.ErrInternalServer
	}
	return item, nil
}

// Create inserts a new active catalog item. Only name, category and unit are
// mandatory; role_category and description are free-form.
func (uc *CatalogUseCase) Create(ctx context.Context, req inbound.CreateItemRequest, creatorID string) (int64, error) {
	if strings.TrimSpace(req.ItemName) == "" ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Unit) == "" {
		return 0, apperror.NewValidation("item_name, category and unit are required")
	}

	item := &entity.CatalogItem{
		ItemName:     req.ItemName,
		Category:     req.Category,
		RoleCategory: req.RoleCategory,
		Unit:         req.Unit,
		Description:  req.Description,
		AddedBy:      creatorID,
		IsActive:     true,
	}

	id, err := uc.catalogRepo.Create(ctx, item)
	if err != nil {
		uc.logger.Error(ctx, "catalog item create failed", err, nil)
		return 0, apperror.ErrInternalServer
	}

	uc.logger.Info(ctx, "catalog item created", map[string]interface{}{
		"item_id":  id,
		"added_by": creatorID,
	})
	return id, nil
}

var _ inbound.CatalogUseCase = (*CatalogUseCase)(nil)
