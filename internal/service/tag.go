package service

import (
	"context"
	"strings"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/model"
)

// TagStore is the persistence surface the tag service needs.
type TagStore interface {
	GetTags(ctx context.Context) ([]model.Tag, error)
	GetTagByID(ctx context.Context, id string) (*model.Tag, error)
	GetTagByName(ctx context.Context, name string) (*model.Tag, error)
	CreateTag(ctx context.Context, tag model.Tag) (model.Tag, error)
	UpdateTag(ctx context.Context, tag model.Tag) error
	DeleteTag(ctx context.Context, id string) error
}

// TagService manages tags: named, globally-unique labels.
type TagService struct {
	store TagStore
}

// NewTagService returns a TagService backed by s.
func NewTagService(s TagStore) *TagService {
	return &TagService{store: s}
}

// CreateTagRequest carries the fields accepted when creating a tag.
type CreateTagRequest struct {
	Name string `json:"name"`
}

// Validate reports every violated field constraint at once.
func (r CreateTagRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation(apperr.FieldError{Field: "name", Message: "Name is required"})
	}
	return nil
}

// UpdateTagRequest carries a partial update: a nil name is left untouched.
type UpdateTagRequest struct {
	Name *string `json:"name"`
}

// TagResponse is the transport shape of a tag.
type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// List returns all tags.
func (s *TagService) List(ctx context.Context) ([]TagResponse, error) {
	tags, err := s.store.GetTags(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = TagResponse{ID: t.ID, Name: t.Name}
	}
	return out, nil
}

// Get returns a single tag by id.
func (s *TagService) Get(ctx context.Context, id string) (TagResponse, error) {
	tag, err := s.store.GetTagByID(ctx, id)
	if err != nil {
		return TagResponse{}, asNotFound(err, "Tag", id)
	}
	return TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

// Create persists a new tag, rejecting duplicate names with Conflict.
func (s *TagService) Create(ctx context.Context, req CreateTagRequest) (TagResponse, error) {
	existing, err := s.store.GetTagByName(ctx, req.Name)
	if err != nil {
		return TagResponse{}, err
	}
	if existing != nil {
		return TagResponse{}, apperr.Conflict("Tag", req.Name)
	}

	created, err := s.store.CreateTag(ctx, model.Tag{Name: req.Name})
	if err != nil {
		return TagResponse{}, err
	}
	return TagResponse{ID: created.ID, Name: created.Name}, nil
}

// Update applies a partial update. Renaming re-checks uniqueness only when
// the new name differs from the current one.
func (s *TagService) Update(ctx context.Context, id string, req UpdateTagRequest) (TagResponse, error) {
	tag, err := s.store.GetTagByID(ctx, id)
	if err != nil {
		return TagResponse{}, asNotFound(err, "Tag", id)
	}

	if req.Name != nil && *req.Name != tag.Name {
		existing, err := s.store.GetTagByName(ctx, *req.Name)
		if err != nil {
			return TagResponse{}, err
		}
		if existing != nil {
			return TagResponse{}, apperr.Conflict("Tag", *req.Name)
		}
		tag.Name = *req.Name
	}

	if err := s.store.UpdateTag(ctx, *tag); err != nil {
		return TagResponse{}, asNotFound(err, "Tag", id)
	}
	return TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

// Delete permanently removes a tag and, via the join-table cascade, its
// associations with todos.
func (s *TagService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteTag(ctx, id); err != nil {
		return asNotFound(err, "Tag", id)
	}
	return nil
}
