package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nhle/todo-api/internal/model"
)

// CreateReminder inserts a new reminder and returns it with its assigned id.
// NotifyMethod defaults to push when unset. Todo existence is the service's
// responsibility; the column carries no foreign key.
func (s *SQLiteStore) CreateReminder(ctx context.Context, reminder model.Reminder) (model.Reminder, error) {
	if reminder.ID == "" {
		reminder.ID = uuid.New().String()
	}
	if reminder.NotifyMethod == "" {
		reminder.NotifyMethod = model.NotifyPush
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO reminders (id, todo_id, time, notify_method) VALUES (?, ?, ?, ?)",
		reminder.ID, reminder.TodoID, formatTime(reminder.Time), reminder.NotifyMethod,
	)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("creating reminder: %w", err)
	}
	return reminder, nil
}

// UpdateReminder overwrites a reminder's time and notification method.
func (s *SQLiteStore) UpdateReminder(ctx context.Context, reminder model.Reminder) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE reminders SET time = ?, notify_method = ? WHERE id = ?",
		formatTime(reminder.Time), reminder.NotifyMethod, reminder.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reminder %s: %w", reminder.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("reminder %s: %w", reminder.ID, ErrNotFound)
	}
	return nil
}

// DeleteReminder removes a reminder by id.
func (s *SQLiteStore) DeleteReminder(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reminder %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("reminder %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetReminderByID retrieves a single reminder by id.
func (s *SQLiteStore) GetReminderByID(ctx context.Context, id string) (*model.Reminder, error) {
	row := s.db.QueryRowxContext(ctx, "SELECT * FROM reminders WHERE id = ?", id)

	reminder, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reminder %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting reminder %s: %w", id, err)
	}
	return &reminder, nil
}

// GetRemindersByTodoID retrieves all reminders attached to a todo, ordered
// by time. An unknown todo id simply yields an empty result.
func (s *SQLiteStore) GetRemindersByTodoID(ctx context.Context, todoID string) ([]model.Reminder, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT * FROM reminders WHERE todo_id = ? ORDER BY time", todoID)
	if err != nil {
		return nil, fmt.Errorf("querying reminders for todo %s: %w", todoID, err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

// scanReminder scans a reminder row from sqlx.Rows or sqlx.Row.
func scanReminder(row interface{ Scan(dest ...interface{}) error }) (model.Reminder, error) {
	var (
		reminder model.Reminder
		rawTime  string
	)

	err := row.Scan(&reminder.ID, &reminder.TodoID, &rawTime, &reminder.NotifyMethod)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, err
		}
		return model.Reminder{}, fmt.Errorf("scanning reminder row: %w", err)
	}

	reminder.Time, err = parseTime(rawTime)
	if err != nil {
		return model.Reminder{}, err
	}
	return reminder, nil
}
