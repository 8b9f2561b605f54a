package service

import (
	"context"
	"strings"
	"time"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/model"
	"github.com/nhle/todo-api/internal/store"
)

// defaultPageSize applies when the caller supplies no page size.
const defaultPageSize = 10

// TodoStore is the persistence surface the todo service needs.
type TodoStore interface {
	ListTodos(ctx context.Context, filter store.TodoFilter) ([]model.Todo, error)
	CountTodos(ctx context.Context, filter store.TodoFilter) (int, error)
	GetTodoByID(ctx context.Context, id string) (*model.Todo, error)
	CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error)
	UpdateTodo(ctx context.Context, todo model.Todo) error
	DeleteTodo(ctx context.Context, id string) error
	GetTagsByIDs(ctx context.Context, ids []string) ([]model.Tag, error)
	SetTodoTags(ctx context.Context, todoID string, tagIDs []string) error
}

// TodoService manages the todo aggregate: lifecycle, tag wiring, and status
// filtering.
type TodoService struct {
	store TodoStore
}

// NewTodoService returns a TodoService backed by s.
func NewTodoService(s TodoStore) *TodoService {
	return &TodoService{store: s}
}

// CreateTodoRequest carries the fields accepted when creating a todo.
// Unresolvable tag ids are dropped silently; categoryId is never validated.
type CreateTodoRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	CategoryID  *string    `json:"categoryId"`
	TagIDs      []string   `json:"tagIds"`
}

// Validate reports every violated field constraint at once.
func (r CreateTodoRequest) Validate() error {
	var fields []apperr.FieldError
	if strings.TrimSpace(r.Title) == "" {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "Title is required"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}

// UpdateTodoRequest carries a partial update: nil fields are left untouched.
// TagIDs is a pointer so "absent" and "present but empty" are distinct; a
// non-nil empty list clears all tag associations.
type UpdateTodoRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
	CategoryID  *string    `json:"categoryId"`
	MemoID      *string    `json:"memoId"`
	TagIDs      *[]string  `json:"tagIds"`
}

// TodoResponse is the transport shape of a todo. TagIDs is omitted entirely
// when the todo has no tags; status is always lowercase.
type TodoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CategoryID  *string    `json:"categoryId,omitempty"`
	TagIDs      []string   `json:"tagIds,omitempty"`
	MemoID      *string    `json:"memoId,omitempty"`
}

// TodoPage is one page of todos plus the metadata needed to compute total
// pages.
type TodoPage struct {
	Content       []TodoResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int            `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
}

// List returns one page of todos, optionally filtered by status. An empty
// status string means no filter; anything that does not parse to a known
// status is an InvalidArgument error.
func (s *TodoService) List(ctx context.Context, status string, page, size int) (TodoPage, error) {
	if size <= 0 {
		size = defaultPageSize
	}
	if page < 0 {
		page = 0
	}

	filter := store.TodoFilter{Limit: size, Offset: page * size}
	if status != "" {
		parsed, err := model.ParseStatus(status)
		if err != nil {
			return TodoPage{}, err
		}
		filter.Status = &parsed
	}

	total, err := s.store.CountTodos(ctx, filter)
	if err != nil {
		return TodoPage{}, err
	}
	todos, err := s.store.ListTodos(ctx, filter)
	if err != nil {
		return TodoPage{}, err
	}

	content := make([]TodoResponse, len(todos))
	for i, t := range todos {
		content[i] = newTodoResponse(t)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	return TodoPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// Get returns a single todo by id.
func (s *TodoService) Get(ctx context.Context, id string) (TodoResponse, error) {
	todo, err := s.store.GetTodoByID(ctx, id)
	if err != nil {
		return TodoResponse{}, asNotFound(err, "Todo", id)
	}
	return newTodoResponse(*todo), nil
}

// Create persists a new todo with status defaulted to pending. Tag ids that
// resolve to existing tags are attached; the rest are dropped without error.
func (s *TodoService) Create(ctx context.Context, req CreateTodoRequest) (TodoResponse, error) {
	todo := model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Status:      model.StatusPending,
		DueDate:     req.DueDate,
		CategoryID:  req.CategoryID,
	}

	created, err := s.store.CreateTodo(ctx, todo)
	if err != nil {
		return TodoResponse{}, err
	}

	if len(req.TagIDs) > 0 {
		tags, err := s.resolveTags(ctx, created.ID, req.TagIDs)
		if err != nil {
			return TodoResponse{}, err
		}
		created.Tags = tags
	}

	return newTodoResponse(created), nil
}

// Update applies a partial update to an existing todo. A supplied tagIds
// list replaces the whole tag set; an empty list clears it.
func (s *TodoService) Update(ctx context.Context, id string, req UpdateTodoRequest) (TodoResponse, error) {
	todo, err := s.store.GetTodoByID(ctx, id)
	if err != nil {
		return TodoResponse{}, asNotFound(err, "Todo", id)
	}

	if req.Title != nil {
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = req.Description
	}
	if req.Status != nil {
		parsed, err := model.ParseStatus(*req.Status)
		if err != nil {
			return TodoResponse{}, err
		}
		todo.Status = parsed
	}
	if req.DueDate != nil {
		todo.DueDate = req.DueDate
	}
	if req.CategoryID != nil {
		todo.CategoryID = req.CategoryID
	}
	if req.MemoID != nil {
		todo.MemoID = req.MemoID
	}

	if err := s.store.UpdateTodo(ctx, *todo); err != nil {
		return TodoResponse{}, asNotFound(err, "Todo", id)
	}

	if req.TagIDs != nil {
		tags, err := s.resolveTags(ctx, id, *req.TagIDs)
		if err != nil {
			return TodoResponse{}, err
		}
		todo.Tags = tags
	}

	return newTodoResponse(*todo), nil
}

// Delete permanently removes a todo. Its tag associations go with it;
// reminders attached to it remain.
func (s *TodoService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTodo(ctx, id); err != nil {
		return asNotFound(err, "Todo", id)
	}
	return nil
}

// resolveTags looks up tagIDs in bulk and stores the subset that exists as
// the todo's complete tag set.
func (s *TodoService) resolveTags(ctx context.Context, todoID string, tagIDs []string) ([]model.Tag, error) {
	tags, err := s.store.GetTagsByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	resolved := make([]string, len(tags))
	for i, t := range tags {
		resolved[i] = t.ID
	}
	if err := s.store.SetTodoTags(ctx, todoID, resolved); err != nil {
		return nil, err
	}
	return tags, nil
}

func newTodoResponse(t model.Todo) TodoResponse {
	resp := TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CategoryID:  t.CategoryID,
		MemoID:      t.MemoID,
	}
	if len(t.Tags) > 0 {
		ids := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			ids[i] = tag.ID
		}
		resp.TagIDs = ids
	}
	return resp
}
