package service

import (
	"context"
	"strings"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/model"
)

// CategoryStore is the persistence surface the category service needs.
type CategoryStore interface {
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) (model.Category, error)
	UpdateCategory(ctx context.Context, category model.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryService manages categories: named, globally-unique labels with an
// optional color.
type CategoryService struct {
	store CategoryStore
}

// NewCategoryService returns a CategoryService backed by s.
func NewCategoryService(s CategoryStore) *CategoryService {
	return &CategoryService{store: s}
}

// CreateCategoryRequest carries the fields accepted when creating a category.
type CreateCategoryRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// Validate reports every violated field constraint at once.
func (r CreateCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation(apperr.FieldError{Field: "name", Message: "Name is required"})
	}
	return nil
}

// UpdateCategoryRequest carries a partial update: nil fields are left
// untouched.
type UpdateCategoryRequest struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}

// CategoryResponse is the transport shape of a category.
type CategoryResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = newCategoryResponse(c)
	}
	return out, nil
}

// Get returns a single category by id.
func (s *CategoryService) Get(ctx context.Context, id string) (CategoryResponse, error) {
	category, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, asNotFound(err, "Category", id)
	}
	return newCategoryResponse(*category), nil
}

// Create persists a new category, rejecting duplicate names with Conflict.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (CategoryResponse, error) {
	existing, err := s.store.GetCategoryByName(ctx, req.Name)
	if err != nil {
		return CategoryResponse{}, err
	}
	if existing != nil {
		return CategoryResponse{}, apperr.Conflict("Category", req.Name)
	}

	created, err := s.store.CreateCategory(ctx, model.Category{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		return CategoryResponse{}, err
	}
	return newCategoryResponse(created), nil
}

// Update applies a partial update. Renaming re-checks uniqueness only when
// the new name differs from the current one.
func (s *CategoryService) Update(ctx context.Context, id string, req UpdateCategoryRequest) (CategoryResponse, error) {
	category, err := s.store.GetCategoryByID(ctx, id)
	if err != nil {
		return CategoryResponse{}, asNotFound(err, "Category", id)
	}

	if req.Name != nil && *req.Name != category.Name {
		existing, err := s.store.GetCategoryByName(ctx, *req.Name)
		if err != nil {
			return CategoryResponse{}, err
		}
		if existing != nil {
			return CategoryResponse{}, apperr.Conflict("Category", *req.Name)
		}
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = req.Color
	}

	if err := s.store.UpdateCategory(ctx, *category); err != nil {
		return CategoryResponse{}, asNotFound(err, "Category", id)
	}
	return newCategoryResponse(*category), nil
}

// Delete permanently removes a category. Todos referencing it keep their
// dangling categoryId.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return asNotFound(err, "Category", id)
	}
	return nil
}

func newCategoryResponse(c model.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Color: c.Color}
}
