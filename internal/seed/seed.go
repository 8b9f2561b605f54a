// Package seed inserts a small set of sample rows for local development.
package seed

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nhle/todo-api/internal/model"
	"github.com/nhle/todo-api/internal/store"
)

// Run populates the database with sample categories, tags, memos, todos, and
// reminders. It is a no-op when any todos already exist, so restarting a dev
// server does not duplicate data.
func Run(ctx context.Context, s *store.SQLiteStore, logger *log.Logger) error {
	count, err := s.CountTodos(ctx, store.TodoFilter{})
	if err != nil {
		return fmt.Errorf("checking for existing data: %w", err)
	}
	if count > 0 {
		logger.Debug("seed skipped: database not empty")
		return nil
	}

	work, err := s.CreateCategory(ctx, model.Category{Name: "Work", Color: strPtr("#FF5733")})
	if err != nil {
		return err
	}
	if _, err := s.CreateCategory(ctx, model.Category{Name: "Personal", Color: strPtr("#33FF57")}); err != nil {
		return err
	}
	if _, err := s.CreateCategory(ctx, model.Category{Name: "Study", Color: strPtr("#3357FF")}); err != nil {
		return err
	}

	urgent, err := s.CreateTag(ctx, model.Tag{Name: "Urgent"})
	if err != nil {
		return err
	}
	important, err := s.CreateTag(ctx, model.Tag{Name: "Important"})
	if err != nil {
		return err
	}
	if _, err := s.CreateTag(ctx, model.Tag{Name: "Routine"}); err != nil {
		return err
	}

	projectMemo, err := s.CreateMemo(ctx, model.Memo{
		Content:     strPtr("Project details and specifications for the new API."),
		Attachments: []string{"https://example.com/spec.pdf"},
	})
	if err != nil {
		return err
	}
	if _, err := s.CreateMemo(ctx, model.Memo{
		Content: strPtr("Meeting notes from the team discussion."),
	}); err != nil {
		return err
	}

	due := time.Now().AddDate(0, 0, 5)
	projectTodo, err := s.CreateTodo(ctx, model.Todo{
		Title:       "Complete API project",
		Description: strPtr("Implement the new RESTful API for the todo application"),
		Status:      model.StatusInProgress,
		DueDate:     &due,
		CategoryID:  &work.ID,
		MemoID:      &projectMemo.ID,
	})
	if err != nil {
		return err
	}
	if err := s.SetTodoTags(ctx, projectTodo.ID, []string{urgent.ID, important.ID}); err != nil {
		return err
	}

	meetingTodo, err := s.CreateTodo(ctx, model.Todo{
		Title:       "Team meeting",
		Description: strPtr("Weekly sync with the team"),
		CategoryID:  &work.ID,
	})
	if err != nil {
		return err
	}

	reminderAt := time.Now().Add(24 * time.Hour)
	if _, err := s.CreateReminder(ctx, model.Reminder{
		TodoID:       meetingTodo.ID,
		Time:         reminderAt,
		NotifyMethod: model.NotifyEmail,
	}); err != nil {
		return err
	}

	logger.Info("seeded sample data")
	return nil
}

func strPtr(s string) *string {
	return &s
}
