package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-api/internal/apperr"
	"github.com/nhle/todo-api/internal/model"
	"github.com/nhle/todo-api/internal/service"
	"github.com/nhle/todo-api/tests/testutil"
)

func strPtr(s string) *string { return &s }

func TestTodoCreateDefaults(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "A", created.Title)
	assert.Equal(t, "pending", created.Status)
	assert.Nil(t, created.DueDate)
	assert.Nil(t, created.CategoryID)
	assert.Nil(t, created.MemoID)
	assert.Nil(t, created.TagIDs)
}

func TestTodoCreateDropsUnknownTagIDs(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	tag, err := s.CreateTag(ctx, model.Tag{Name: "real"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, service.CreateTodoRequest{
		Title:  "mixed tags",
		TagIDs: []string{tag.ID, "ghost-1", "ghost-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{tag.ID}, created.TagIDs)

	// Persisted set matches the response.
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{tag.ID}, got.TagIDs)
}

func TestTodoCreateAllTagIDsUnknown(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)

	created, err := svc.Create(context.Background(), service.CreateTodoRequest{
		Title:  "no real tags",
		TagIDs: []string{"ghost-1", "ghost-2"},
	})
	require.NoError(t, err)
	// tagIds is absent, not an empty list.
	assert.Nil(t, created.TagIDs)
}

func TestTodoUpdatePartial(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.UpdateTodoRequest{Status: strPtr("completed")})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "A", updated.Title)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, "A", got.Title)
}

func TestTodoUpdateStatusCaseInsensitive(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.UpdateTodoRequest{Status: strPtr("IN_PROGRESS")})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)
}

func TestTodoUpdateInvalidStatus(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, service.UpdateTodoRequest{Status: strPtr("done")})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	assert.Equal(t, "Invalid status: done", err.Error())
}

func TestTodoUpdateClearsTagSet(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	tag, err := s.CreateTag(ctx, model.Tag{Name: "transient"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A", TagIDs: []string{tag.ID}})
	require.NoError(t, err)
	require.Len(t, created.TagIDs, 1)

	empty := []string{}
	updated, err := svc.Update(ctx, created.ID, service.UpdateTodoRequest{TagIDs: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.TagIDs)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.TagIDs)
}

func TestTodoUpdateWithoutTagIDsKeepsTags(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	tag, err := s.CreateTag(ctx, model.Tag{Name: "sticky"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A", TagIDs: []string{tag.ID}})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.UpdateTodoRequest{Title: strPtr("B")})
	require.NoError(t, err)
	assert.Equal(t, []string{tag.ID}, updated.TagIDs)
}

func TestTodoWeakReferencesUnchecked(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	// Neither the category nor the memo exists; creation succeeds anyway.
	created, err := svc.Create(ctx, service.CreateTodoRequest{
		Title:      "dangling",
		CategoryID: strPtr("no-such-category"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, service.UpdateTodoRequest{MemoID: strPtr("no-such-memo")})
	require.NoError(t, err)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, "no-such-category", *updated.CategoryID)
	require.NotNil(t, updated.MemoID)
	assert.Equal(t, "no-such-memo", *updated.MemoID)
}

func TestTodoGetNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Todo not found with id: missing", err.Error())
}

func TestTodoDeleteThenGet(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	err = svc.Delete(ctx, created.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestTodoListPagination(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	for i := 0; i < 15; i++ {
		_, err := svc.Create(ctx, service.CreateTodoRequest{Title: fmt.Sprintf("todo %02d", i)})
		require.NoError(t, err)
	}

	page0, err := svc.List(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.Len(t, page0.Content, 10)
	assert.Equal(t, 15, page0.TotalElements)
	assert.Equal(t, 2, page0.TotalPages)
	assert.Equal(t, 0, page0.Page)
	assert.Equal(t, 10, page0.Size)

	page1, err := svc.List(ctx, "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, page1.Content, 5)
	assert.Equal(t, 15, page1.TotalElements)
}

func TestTodoListStatusFilter(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "done"})
		require.NoError(t, err)
		_, err = svc.Update(ctx, created.ID, service.UpdateTodoRequest{Status: strPtr("completed")})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, service.CreateTodoRequest{Title: "open"})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, "COMPLETED", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalElements)
	for _, todo := range page.Content {
		assert.Equal(t, "completed", todo.Status)
	}
}

func TestTodoListInvalidStatus(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)

	_, err := svc.List(context.Background(), "bogus", 0, 10)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidArgument, apperr.KindOf(err))
	assert.Equal(t, "Invalid status: bogus", err.Error())
}

func TestTodoDueDateRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := service.NewTodoService(s)
	ctx := context.Background()

	due := time.Date(2026, 10, 1, 9, 0, 0, 0, time.FixedZone("", -5*3600))
	created, err := svc.Create(ctx, service.CreateTodoRequest{Title: "A", DueDate: &due})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
}
