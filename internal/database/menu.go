package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant/internal/models"
)

func (db *DB) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	query := `INSERT INTO menu_items (name, category, price, image) VALUES (?, ?, ?, ?)`
	result, err := db.ExecContext(ctx, query, item.Name, item.Category, item.Price, item.Image)
	if err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	item.ID = id
	return nil
}

func (db *DB) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	query := `SELECT id, name, category, price, image, created_at FROM menu_items WHERE id = ?`
	var item models.MenuItem
	err := db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Category, &item.Price, &item.Image, &item.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return &item, nil
}

// GetMenuSections returns all menu items grouped by category. Sections
// are ordered by category name, items inside a section by insertion
// order.
func (db *DB) GetMenuSections(ctx context.Context) ([]models.MenuSection, error) {
	query := `SELECT id, name, category, price, image, created_at FROM menu_items ORDER BY category, id`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	defer rows.Close()

	var sections []models.MenuSection
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Price, &item.Image, &item.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		if len(sections) == 0 || sections[len(sections)-1].Category != item.Category {
			sections = append(sections, models.MenuSection{Category: item.Category})
		}
		last := &sections[len(sections)-1]
		last.Items = append(last.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read menu items: %w", err)
	}
	return sections, nil
}
