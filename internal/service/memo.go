package service

import (
	"context"

	"github.com/nhle/todo-api/internal/model"
)

// MemoStore is the persistence surface the memo service needs.
type MemoStore interface {
	GetMemoByID(ctx context.Context, id string) (*model.Memo, error)
	CreateMemo(ctx context.Context, memo model.Memo) (model.Memo, error)
	UpdateMemo(ctx context.Context, memo model.Memo) error
	DeleteMemo(ctx context.Context, id string) error
}

// MemoService manages memos: freeform content plus an ordered attachment
// list, with no uniqueness constraints.
type MemoService struct {
	store MemoStore
}

// NewMemoService returns a MemoService backed by s.
func NewMemoService(s MemoStore) *MemoService {
	return &MemoService{store: s}
}

// CreateMemoRequest carries the fields accepted when creating a memo. Both
// are optional.
type CreateMemoRequest struct {
	Content     *string  `json:"content"`
	Attachments []string `json:"attachments"`
}

// UpdateMemoRequest carries a partial update. A non-nil Attachments list
// replaces the stored list wholesale; nil leaves it untouched.
type UpdateMemoRequest struct {
	Content     *string   `json:"content"`
	Attachments *[]string `json:"attachments"`
}

// MemoResponse is the transport shape of a memo. Attachments is omitted
// when empty.
type MemoResponse struct {
	ID          string   `json:"id"`
	Content     *string  `json:"content,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// Get returns a single memo by id.
func (s *MemoService) Get(ctx context.Context, id string) (MemoResponse, error) {
	memo, err := s.store.GetMemoByID(ctx, id)
	if err != nil {
		return MemoResponse{}, asNotFound(err, "Memo", id)
	}
	return newMemoResponse(*memo), nil
}

// Create persists a new memo.
func (s *MemoService) Create(ctx context.Context, req CreateMemoRequest) (MemoResponse, error) {
	created, err := s.store.CreateMemo(ctx, model.Memo{
		Content:     req.Content,
		Attachments: req.Attachments,
	})
	if err != nil {
		return MemoResponse{}, err
	}
	return newMemoResponse(created), nil
}

// Update applies a partial update. Supplying attachments (even an empty
// list) replaces the whole stored list.
func (s *MemoService) Update(ctx context.Context, id string, req UpdateMemoRequest) (MemoResponse, error) {
	memo, err := s.store.GetMemoByID(ctx, id)
	if err != nil {
		return MemoResponse{}, asNotFound(err, "Memo", id)
	}

	if req.Content != nil {
		memo.Content = req.Content
	}
	if req.Attachments != nil {
		memo.Attachments = *req.Attachments
	}

	if err := s.store.UpdateMemo(ctx, *memo); err != nil {
		return MemoResponse{}, asNotFound(err, "Memo", id)
	}
	return newMemoResponse(*memo), nil
}

// Delete permanently removes a memo and its attachment rows.
func (s *MemoService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteMemo(ctx, id); err != nil {
		return asNotFound(err, "Memo", id)
	}
	return nil
}

func newMemoResponse(m model.Memo) MemoResponse {
	resp := MemoResponse{ID: m.ID, Content: m.Content}
	if len(m.Attachments) > 0 {
		resp.Attachments = m.Attachments
	}
	return resp
}
