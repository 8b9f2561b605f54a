package service

import (
	"context"
	"time"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/model"
)

// ReminderStore is the persistence surface the reminder service needs. The
// todo existence check at creation time is the one enforced foreign-key
// invariant in the system.
type ReminderStore interface {
	GetReminderByID(ctx context.Context, id string) (*model.Reminder, error)
	GetRemindersByTodoID(ctx context.Context, todoID string) ([]model.Reminder, error)
	CreateReminder(ctx context.Context, reminder model.Reminder) (model.Reminder, error)
	UpdateReminder(ctx context.Context, reminder model.Reminder) error
	DeleteReminder(ctx context.Context, id string) error
	TodoExists(ctx context.Context, id string) (bool, error)
}

// ReminderService manages time-based notifications attached to todos.
type ReminderService struct {
	store ReminderStore
}

// NewReminderService returns a ReminderService backed by s.
func NewReminderService(s ReminderStore) *ReminderService {
	return &ReminderService{store: s}
}

// CreateReminderRequest carries the fields accepted when creating a
// reminder. NotifyMethod defaults to push when absent.
type CreateReminderRequest struct {
	TodoID       string     `json:"todoId"`
	Time         *time.Time `json:"time"`
	NotifyMethod *string    `json:"notifyMethod"`
}

// Validate reports every violated field constraint at once.
func (r CreateReminderRequest) Validate() error {
	var fields []apperr.FieldError
	if r.TodoID == "" {
		fields = append(fields, apperr.FieldError{Field: "todoId", Message: "Todo ID is required"})
	}
	if r.Time == nil {
		fields = append(fields, apperr.FieldError{Field: "time", Message: "Time is required"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}

// UpdateReminderRequest carries a partial update: nil fields are left
// untouched.
type UpdateReminderRequest struct {
	Time         *time.Time `json:"time"`
	NotifyMethod *string    `json:"notifyMethod"`
}

// ReminderResponse is the transport shape of a reminder; notifyMethod is
// always lowercase.
type ReminderResponse struct {
	ID           string    `json:"id"`
	TodoID       string    `json:"todoId"`
	Time         time.Time `json:"time"`
	NotifyMethod string    `json:"notifyMethod"`
}

// Get returns a single reminder by id.
func (s *ReminderService) Get(ctx context.Context, id string) (ReminderResponse, error) {
	reminder, err := s.store.GetReminderByID(ctx, id)
	if err != nil {
		return ReminderResponse{}, asNotFound(err, "Reminder", id)
	}
	return newReminderResponse(*reminder), nil
}

// ListByTodo returns all reminders for a todo. The todo itself is not
// required to exist; an unknown id yields an empty list.
func (s *ReminderService) ListByTodo(ctx context.Context, todoID string) ([]ReminderResponse, error) {
	reminders, err := s.store.GetRemindersByTodoID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	out := make([]ReminderResponse, len(reminders))
	for i, r := range reminders {
		out[i] = newReminderResponse(r)
	}
	return out, nil
}

// Create persists a new reminder. The referenced todo must exist; nothing
// is written when it does not.
func (s *ReminderService) Create(ctx context.Context, req CreateReminderRequest) (ReminderResponse, error) {
	exists, err := s.store.TodoExists(ctx, req.TodoID)
	if err != nil {
		return ReminderResponse{}, err
	}
	if !exists {
		return ReminderResponse{}, apperr.NotFound("Todo", req.TodoID)
	}

	method := model.NotifyPush
	if req.NotifyMethod != nil {
		method, err = model.ParseNotifyMethod(*req.NotifyMethod)
		if err != nil {
			return ReminderResponse{}, err
		}
	}

	created, err := s.store.CreateReminder(ctx, model.Reminder{
		TodoID:       req.TodoID,
		Time:         *req.Time,
		NotifyMethod: method,
	})
	if err != nil {
		return ReminderResponse{}, err
	}
	return newReminderResponse(created), nil
}

// Update applies a partial update to an existing reminder.
func (s *ReminderService) Update(ctx context.Context, id string, req UpdateReminderRequest) (ReminderResponse, error) {
	reminder, err := s.store.GetReminderByID(ctx, id)
	if err != nil {
		return ReminderResponse{}, asNotFound(err, "Reminder", id)
	}

	if req.Time != nil {
		reminder.Time = *req.Time
	}
	if req.NotifyMethod != nil {
		method, err := model.ParseNotifyMethod(*req.NotifyMethod)
		if err != nil {
			return ReminderResponse{}, err
		}
		reminder.NotifyMethod = method
	}

	if err := s.store.UpdateReminder(ctx, *reminder); err != nil {
		return ReminderResponse{}, asNotFound(err, "Reminder", id)
	}
	return newReminderResponse(*reminder), nil
}

// Delete permanently removes a reminder.
func (s *ReminderService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteReminder(ctx, id); err != nil {
		return asNotFound(err, "Reminder", id)
	}
	return nil
}

func newReminderResponse(r model.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:           r.ID,
		TodoID:       r.TodoID,
		Time:         r.Time,
		NotifyMethod: string(r.NotifyMethod),
	}
}
