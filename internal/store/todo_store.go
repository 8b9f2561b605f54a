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

// CreateTodo inserts a new todo and returns it with its assigned id.
// Status defaults to pending when unset. Tags are managed separately via
// SetTodoTags.
func (s *SQLiteStore) CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if todo.ID == "" {
		todo.ID = uuid.New().String()
	}
	if todo.Status == "" {
		todo.Status = model.StatusPending
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, description, status, due_date, category_id, memo_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		todo.ID, todo.Title, todo.Description, todo.Status,
		formatTimePtr(todo.DueDate), todo.CategoryID, todo.MemoID,
	)
	if err != nil {
		return model.Todo{}, fmt.Errorf("creating todo: %w", err)
	}
	return todo, nil
}

// UpdateTodo overwrites all scalar columns of an existing todo.
func (s *SQLiteStore) UpdateTodo(ctx context.Context, todo model.Todo) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE todos SET
			title = ?, description = ?, status = ?,
			due_date = ?, category_id = ?, memo_id = ?
		WHERE id = ?`,
		todo.Title, todo.Description, todo.Status,
		formatTimePtr(todo.DueDate), todo.CategoryID, todo.MemoID,
		todo.ID,
	)
	if err != nil {
		return fmt.Errorf("updating todo %s: %w", todo.ID, err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("todo %s: %w", todo.ID, ErrNotFound)
	}
	return nil
}

// DeleteTodo removes a todo by id. The CASCADE on todo_tags removes its tag
// associations; reminders pointing at the todo are kept.
func (s *SQLiteStore) DeleteTodo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("todo %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetTodoByID retrieves a single todo by id, including its tags.
func (s *SQLiteStore) GetTodoByID(ctx context.Context, id string) (*model.Todo, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM todos WHERE id = ?", id)

	todo, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("todo %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting todo %s: %w", id, err)
	}

	tags, err := s.GetTagsForTodo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading tags for todo %s: %w", id, err)
	}
	todo.Tags = tags

	return &todo, nil
}

// ListTodos retrieves todos matching the filter, tags included.
func (s *SQLiteStore) ListTodos(ctx context.Context, filter TodoFilter) ([]model.Todo, error) {
	query, args := buildTodoQuery("SELECT *", filter, true)

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(todos) == 0 {
		return todos, nil
	}

	ids := make([]string, len(todos))
	for i := range todos {
		ids[i] = todos[i].ID
	}
	tagsByTodo, err := s.GetTagsForTodos(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("loading tags for todos: %w", err)
	}
	for i := range todos {
		todos[i].Tags = tagsByTodo[todos[i].ID]
	}

	return todos, nil
}

// CountTodos returns the count of todos matching the filter, ignoring
// pagination.
func (s *SQLiteStore) CountTodos(ctx context.Context, filter TodoFilter) (int, error) {
	query, args := buildTodoQuery("SELECT COUNT(*)", filter, false)

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("counting todos: %w", err)
	}
	return count, nil
}

// TodoExists reports whether a todo row with the given id exists.
func (s *SQLiteStore) TodoExists(ctx context.Context, id string) (bool, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM todos WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("checking todo %s: %w", id, err)
	}
	return count > 0, nil
}

// buildTodoQuery constructs the SQL query and args for a TodoFilter.
func buildTodoQuery(selectClause string, filter TodoFilter, paginate bool) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}

	query := selectClause + " FROM todos"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if paginate {
		// rowid keeps iteration order stable across pages.
		query += " ORDER BY rowid"
		if filter.Limit > 0 {
			query += fmt.Sprintf(" LIMIT %d", filter.Limit)
		}
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", filter.Offset)
		}
	}

	return query, args
}

// scanTodo scans a todo row from sqlx.Rows or sqlx.Row.
func scanTodo(row interface{ Scan(dest ...interface{}) error }) (model.Todo, error) {
	var (
		todo    model.Todo
		dueDate *string
	)

	err := row.Scan(
		&todo.ID, &todo.Title, &todo.Description, &todo.Status,
		&dueDate, &todo.CategoryID, &todo.MemoID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Todo{}, err
		}
		return model.Todo{}, fmt.Errorf("scanning todo row: %w", err)
	}

	todo.DueDate, err = parseTimePtr(dueDate)
	if err != nil {
		return model.Todo{}, err
	}

	return todo, nil
}
