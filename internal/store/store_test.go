package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/todo-api/internal/model"
	"github.com/nhle/todo-api/internal/store"
	"github.com/nhle/todo-api/tests/testutil"
)

func strPtr(s string) *string { return &s }

func TestCategoryCRUD(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateCategory(ctx, model.Category{Name: "Work", Color: strPtr("#FF5733")})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
	require.NotNil(t, got.Color)
	assert.Equal(t, "#FF5733", *got.Color)

	byName, err := s.GetCategoryByName(ctx, "Work")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, created.ID, byName.ID)

	missing, err := s.GetCategoryByName(ctx, "Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	got.Name = "Office"
	require.NoError(t, s.UpdateCategory(ctx, *got))
	renamed, err := s.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Office", renamed.Name)

	require.NoError(t, s.DeleteCategory(ctx, created.ID))
	_, err = s.GetCategoryByID(ctx, created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestCategoryNameUniqueConstraint(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := s.CreateCategory(ctx, model.Category{Name: "Work"})
	require.NoError(t, err)

	// The service checks first; the schema constraint is the backstop.
	_, err = s.CreateCategory(ctx, model.Category{Name: "Work"})
	assert.Error(t, err)
}

func TestGetTagsByIDsDropsUnknown(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	a, err := s.CreateTag(ctx, model.Tag{Name: "alpha"})
	require.NoError(t, err)
	b, err := s.CreateTag(ctx, model.Tag{Name: "beta"})
	require.NoError(t, err)

	tags, err := s.GetTagsByIDs(ctx, []string{a.ID, "no-such-tag", b.ID})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	tags, err = s.GetTagsByIDs(ctx, []string{"no-such-tag"})
	require.NoError(t, err)
	assert.Empty(t, tags)

	tags, err = s.GetTagsByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestMemoAttachmentsOrderedAndReplaced(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateMemo(ctx, model.Memo{
		Content:     strPtr("notes"),
		Attachments: []string{"https://a.example/1", "https://a.example/2", "https://a.example/3"},
	})
	require.NoError(t, err)

	got, err := s.GetMemoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example/1", "https://a.example/2", "https://a.example/3"}, got.Attachments)

	// Replacement is wholesale, order preserved.
	got.Attachments = []string{"https://b.example/9", "https://b.example/1"}
	require.NoError(t, s.UpdateMemo(ctx, *got))
	got, err = s.GetMemoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example/9", "https://b.example/1"}, got.Attachments)

	// Empty replacement clears the list.
	got.Attachments = nil
	require.NoError(t, s.UpdateMemo(ctx, *got))
	got, err = s.GetMemoByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Attachments)
}

func TestMemoDelete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	created, err := s.CreateMemo(ctx, model.Memo{Attachments: []string{"https://a.example/1"}})
	require.NoError(t, err)

	require.NoError(t, s.DeleteMemo(ctx, created.ID))
	_, err = s.GetMemoByID(ctx, created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	err = s.DeleteMemo(ctx, created.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestReminderCRUD(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	todo, err := s.CreateTodo(ctx, model.Todo{Title: "with reminders"})
	require.NoError(t, err)

	later := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	sooner := time.Now().Add(1 * time.Hour).Truncate(time.Second)

	second, err := s.CreateReminder(ctx, model.Reminder{TodoID: todo.ID, Time: later, NotifyMethod: model.NotifySMS})
	require.NoError(t, err)
	first, err := s.CreateReminder(ctx, model.Reminder{TodoID: todo.ID, Time: sooner})
	require.NoError(t, err)
	// NotifyMethod defaults to push when unset.
	assert.Equal(t, model.NotifyPush, first.NotifyMethod)

	reminders, err := s.GetRemindersByTodoID(ctx, todo.ID)
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, first.ID, reminders[0].ID)
	assert.Equal(t, second.ID, reminders[1].ID)

	got, err := s.GetReminderByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, got.Time.Equal(later))
	assert.Equal(t, model.NotifySMS, got.NotifyMethod)

	require.NoError(t, s.DeleteReminder(ctx, first.ID))
	_, err = s.GetReminderByID(ctx, first.ID)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestRemindersSurviveTodoDelete(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	todo, err := s.CreateTodo(ctx, model.Todo{Title: "doomed"})
	require.NoError(t, err)
	reminder, err := s.CreateReminder(ctx, model.Reminder{TodoID: todo.ID, Time: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	require.NoError(t, s.DeleteTodo(ctx, todo.ID))

	// reminders.todo_id has no foreign key: the reminder is now an orphan
	// but remains readable.
	got, err := s.GetReminderByID(ctx, reminder.ID)
	require.NoError(t, err)
	assert.Equal(t, todo.ID, got.TodoID)
}

func TestRemindersForUnknownTodoEmpty(t *testing.T) {
	s := testutil.NewTestStore(t)

	reminders, err := s.GetRemindersByTodoID(context.Background(), "never-existed")
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
