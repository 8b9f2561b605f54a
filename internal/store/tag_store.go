package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/todo-api/internal/model"
)

// CreateTag inserts a new tag and returns it with its assigned id.
func (s *SQLiteStore) CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error) {
	if tag.ID == "" {
		tag.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO tags (id, name) VALUES (?, ?)",
		tag.ID, tag.Name,
	)
	if err != nil {
		return model.Tag{}, fmt.Errorf("creating tag: %w", err)
	}
	return tag, nil
}

// UpdateTag overwrites a tag's name.
func (s *SQLiteStore) UpdateTag(ctx context.Context, tag model.Tag) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE tags SET name = ? WHERE id = ?",
		tag.Name, tag.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tag %s: %w", tag.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tag %s: %w", tag.ID, ErrNotFound)
	}
	return nil
}

// DeleteTag removes a tag. The CASCADE on todo_tags removes associations.
func (s *SQLiteStore) DeleteTag(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM tags WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting tag %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("tag %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetTagByID retrieves a single tag by id.
func (s *SQLiteStore) GetTagByID(ctx context.Context, id string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.GetContext(ctx, &tag, "SELECT * FROM tags WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting tag %s: %w", id, err)
	}
	return &tag, nil
}

// GetTagByName retrieves a tag by its exact name. Returns (nil, nil) when no
// tag has that name; used for uniqueness checks.
func (s *SQLiteStore) GetTagByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	err := s.db.GetContext(ctx, &tag, "SELECT * FROM tags WHERE name = ?", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting tag by name %q: %w", name, err)
	}
	return &tag, nil
}

// GetTags retrieves all tags ordered by name.
func (s *SQLiteStore) GetTags(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	err := s.db.SelectContext(ctx, &tags, "SELECT * FROM tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying tags: %w", err)
	}
	return tags, nil
}

// GetTagsByIDs retrieves the tags whose ids appear in ids. Ids with no
// matching row are simply absent from the result.
func (s *SQLiteStore) GetTagsByIDs(ctx context.Context, ids []string) ([]model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	var tags []model.Tag
	err := s.db.SelectContext(ctx, &tags,
		"SELECT * FROM tags WHERE id IN ("+strings.Join(placeholders, ", ")+") ORDER BY name",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("querying tags by ids: %w", err)
	}
	return tags, nil
}

// GetTagsForTodo retrieves all tags associated with a todo.
func (s *SQLiteStore) GetTagsForTodo(ctx context.Context, todoID string) ([]model.Tag, error) {
	var tags []model.Tag
	err := s.db.SelectContext(ctx, &tags, `
		SELECT t.* FROM tags t
		INNER JOIN todo_tags tt ON t.id = tt.tag_id
		WHERE tt.todo_id = ?
		ORDER BY t.name`, todoID)
	if err != nil {
		return nil, fmt.Errorf("querying tags for todo %s: %w", todoID, err)
	}
	return tags, nil
}

// GetTagsForTodos retrieves tags for a batch of todos in one query, keyed by
// todo id.
func (s *SQLiteStore) GetTagsForTodos(ctx context.Context, todoIDs []string) (map[string][]model.Tag, error) {
	if len(todoIDs) == 0 {
		return map[string][]model.Tag{}, nil
	}

	placeholders := make([]string, len(todoIDs))
	args := make([]interface{}, len(todoIDs))
	for i, id := range todoIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT tt.todo_id, t.id, t.name FROM tags t
		INNER JOIN todo_tags tt ON t.id = tt.tag_id
		WHERE tt.todo_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY t.name`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tags for todos: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]model.Tag)
	for rows.Next() {
		var todoID string
		var t model.Tag
		if err := rows.Scan(&todoID, &t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scanning tag row: %w", err)
		}
		result[todoID] = append(result[todoID], t)
	}
	return result, rows.Err()
}

// SetTodoTags replaces all tag associations for a todo in one transaction.
// An empty tagIDs slice clears the set.
func (s *SQLiteStore) SetTodoTags(ctx context.Context, todoID string, tagIDs []string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM todo_tags WHERE todo_id = ?", todoID); err != nil {
		return fmt.Errorf("clearing todo tags: %w", err)
	}

	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO todo_tags (todo_id, tag_id) VALUES (?, ?)",
			todoID, tagID); err != nil {
			return fmt.Errorf("setting tag %s on todo %s: %w", tagID, todoID, err)
		}
	}

	return tx.Commit()
}
