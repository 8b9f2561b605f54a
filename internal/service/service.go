// Package service holds the aggregate services: one per resource, each
// enforcing that resource's invariants (existence, uniqueness, enum parsing,
// relationship wiring) and mapping persisted entities to transport-facing
// response shapes. Each service declares the narrow store interface it
// consumes; *store.SQLiteStore satisfies all of them.
package service

import (
	"errors"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/store"
)

// Services bundles the five resource services for transport wiring.
type Services struct {
	Todos      *TodoService
	Categories *CategoryService
	Tags       *TagService
	Memos      *MemoService
	Reminders  *ReminderService
}

// NewServices constructs all services on top of a single store.
func NewServices(s *store.SQLiteStore) *Services {
	return &Services{
		Todos:      NewTodoService(s),
		Categories: NewCategoryService(s),
		Tags:       NewTagService(s),
		Memos:      NewMemoService(s),
		Reminders:  NewReminderService(s),
	}
}

// asNotFound translates the store's not-found sentinel into the error
// taxonomy, leaving other errors untouched.
func asNotFound(err error, entity, id string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound(entity, id)
	}
	return err
}
