package model

import (
	"strings"
	"time"

	"github.com/nhle/todo-api/internal/apperr"
)

// Status is the lifecycle state of a todo.
type Status string

// Todo status constants.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// ParseStatus matches value case-insensitively against the known statuses.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(value) {
	case "pending":
		return StatusPending, nil
	case "in_progress":
		return StatusInProgress, nil
	case "completed":
		return StatusCompleted, nil
	default:
		return "", apperr.InvalidArgument("Invalid status: %s", value)
	}
}

// Todo is the central aggregate: a task item with an optional category and
// memo reference and a set of tags. CategoryID and MemoID are weak
// references; they are never validated against existing rows.
type Todo struct {
	ID          string     `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Status      Status     `json:"status" db:"status"`
	DueDate     *time.Time `json:"due_date,omitempty" db:"due_date"`
	CategoryID  *string    `json:"category_id,omitempty" db:"category_id"`
	MemoID      *string    `json:"memo_id,omitempty" db:"memo_id"`

	// Tags is populated by queries that join with todo_tags.
	Tags []Tag `json:"tags,omitempty" db:"-"`
}
