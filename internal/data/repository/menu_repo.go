package repository

import (
	"context"
	"fmt"

	"food-ordering/internal/data/entity"
	"food-ordering/pkg/database"

	"go.uber.org/zap"
)

// MenuFilter narrows the catalog listing. IsVeg filters only when set;
// Search matches name or description case-insensitively.
type MenuFilter struct {
	IsVeg  *bool
	Search string
}

type MenuRepository interface {
	Find(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error)
}

type menuRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMenuRepository(db database.PgxIface, log *zap.Logger) MenuRepository {
	return &menuRepository{
		db:  db,
		log: log,
	}
}

func (mr *menuRepository) Find(ctx context.Context, filter MenuFilter) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, description, price, image, category, is_veg
		FROM menu_items
	`

	var args []any

	if filter.IsVeg != nil {
		args = append(args, *filter.IsVeg)
		query += fmt.Sprintf(" WHERE is_veg = $%d", len(args))
	}

	if filter.Search != "" {
		clause := " WHERE"
		if len(args) > 0 {
			clause = " AND"
		}
		args = append(args, filter.Search)
		query += fmt.Sprintf("%s (name ILIKE '%%' || $%d || '%%' OR description ILIKE '%%' || $%d || '%%')",
			clause, len(args), len(args))
	}

	query += " ORDER BY category, name"

	rows, err := mr.db.Query(ctx, query, args...)
	if err != nil {
		mr.log.Error("Failed to query menu items",
			zap.Error(err),
			zap.String("search", filter.Search),
		)
		return nil, fmt.Errorf("find menu items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		var item entity.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Image,
			&item.Category,
			&item.IsVeg,
		)
		if err != nil {
			mr.log.Error("Failed to scan menu item row", zap.Error(err))
			return nil, fmt.Errorf("scan menu item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate menu item rows: %w", err)
	}

	return items, nil
}
