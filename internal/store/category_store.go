package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nhle/todo-api/internal/model"
)

// CreateCategory inserts a new category and returns it with its assigned id.
func (s *SQLiteStore) CreateCategory(ctx context.Context, category model.Category) (model.Category, error) {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, color) VALUES (?, ?, ?)",
		category.ID, category.Name, category.Color,
	)
	if err != nil {
		return model.Category{}, fmt.Errorf("creating category: %w", err)
	}
	return category, nil
}

// UpdateCategory overwrites a category's name and color.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, category model.Category) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE categories SET name = ?, color = ? WHERE id = ?",
		category.Name, category.Color, category.ID,
	)
	if err != nil {
		return fmt.Errorf("updating category %s: %w", category.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("category %s: %w", category.ID, ErrNotFound)
	}
	return nil
}

// DeleteCategory removes a category by id. Todos referencing it keep their
// dangling category_id; the reference is weak.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting category %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetCategoryByID retrieves a single category by id.
func (s *SQLiteStore) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := s.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting category %s: %w", id, err)
	}
	return &category, nil
}

// GetCategoryByName retrieves a category by its exact name. Returns
// (nil, nil) when no category has that name; used for uniqueness checks.
func (s *SQLiteStore) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	var category model.Category
	err := s.db.GetContext(ctx, &category, "SELECT * FROM categories WHERE name = ?", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting category by name %q: %w", name, err)
	}
	return &category, nil
}

// GetCategories retrieves all categories ordered by name.
func (s *SQLiteStore) GetCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := s.db.SelectContext(ctx, &categories, "SELECT * FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	return categories, nil
}
