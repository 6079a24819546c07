package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/seastock/seastock/application/port/outbound"
	"github.com/seastock/seastock/domain/entity"
)

type catalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) outbound.CatalogRepository {
	return &catalogRepository{db: db}
}

// FindAll returns active items joined with the adding user's name, ordered by
// category then name for stable display.
func (r *catalogRepository) FindAll(ctx context.Context) ([]*entity.CatalogItem, error) {
	query := `
		SELECT ic.id, ic.item_name, ic.category, ic.role_category, ic.unit, ic.description,
		       COALESCE(ic.added_by::TEXT, ''), COALESCE(u.name, ''), ic.is_active, ic.created_at
		FROM item_catalog ic
		LEFT JOIN users u ON ic.added_by = u.id
		WHERE ic.is_active = TRUE
		ORDER BY ic.category, ic.item_name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	return scanItemsWithAddedBy(rows)
}

func (r *catalogRepository) FindByRoleCategory(ctx context.Context, role string) ([]*entity.CatalogItem, error) {
	query := `
		SELECT id, item_name, category, role_category, unit, description,
		       COALESCE(added_by::TEXT, ''), is_active, created_at
		FROM item_catalog
		WHERE role_category = $1 AND is_active = TRUE
		ORDER BY item_name
	`

	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items by role: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *catalogRepository) FindByCategory(ctx context.Context, category string) ([]*entity.CatalogItem, error) {
	query := `
		SELECT id, item_name, category, role_category, unit, description,
		       COALESCE(added_by::TEXT, ''), is_active, created_at
		FROM item_catalog
		WHERE category = $1 AND is_active = TRUE
		ORDER BY item_name
	`

	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog items by category: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *catalogRepository) FindByID(ctx context.Context, id int64) (*entity.CatalogItem, error) {
	query := `
		SELECT id, item_name, category, role_category, unit, description,
		       COALESCE(added_by::TEXT, ''), is_active, created_at
		FROM item_catalog
		WHERE id = $1 AND is_active = TRUE
	`

	var item entity.CatalogItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.ItemName,
		&item.Category,
		&item.RoleCategory,
		&item.Unit,
		&item.Description,
		&item.AddedBy,
		&item.IsActive,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, outbound.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find catalog item: %w", err)
	}

	return &item, nil
}

func (r *catalogRepository) SearchByName(ctx context.Context, term string) ([]*entity.CatalogItem, error) {
	query := `
		SELECT id, item_name, category, role_category, unit, description,
		       COALESCE(added_by::TEXT, ''), is_active, created_at
		FROM item_catalog
		WHERE item_name ILIKE $1 AND is_active = TRUE
		ORDER BY item_name
	`

	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *catalogRepository) Create(ctx context.Context, item *entity.CatalogItem) (int64, error) {
	query := `
		INSERT INTO item_catalog (item_name, category, role_category, unit, description, added_by, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		item.ItemName,
		item.Category,
		item.RoleCategory,
		item.Unit,
		item.Description,
		item.AddedBy,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create catalog item: %w", err)
	}

	return id, nil
}

func scanItems(rows *sql.Rows) ([]*entity.CatalogItem, error) {
	var items []*entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		err := rows.Scan(
			&item.ID,
			&item.ItemName,
			&item.Category,
			&item.RoleCategory,
			&item.Unit,
			&item.Description,
			&item.AddedBy,
			&item.IsActive,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog items: %w", err)
	}
	return items, nil
}

func scanItemsWithAddedBy(rows *sql.Rows) ([]*entity.CatalogItem, error) {
	var items []*entity.CatalogItem
	for rows.Next() {
		var item entity.CatalogItem
		err := rows.Scan(
			&item.ID,
			&item.ItemName,
			&item.Category,
			&item.RoleCategory,
			&item.Unit,
			&item.Description,
			&item.AddedBy,
			&item.AddedByName,
			&item.IsActive,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating catalog items: %w", err)
	}
	return items, nil
}
