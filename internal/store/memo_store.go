package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nhle/todo-api/internal/model"
)

// CreateMemo inserts a new memo with its attachment list in one transaction
// and returns it with its assigned id.
func (s *SQLiteStore) CreateMemo(ctx context.Context, memo model.Memo) (model.Memo, error) {
	if memo.ID == "" {
		memo.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Memo{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO memos (id, content) VALUES (?, ?)",
		memo.ID, memo.Content); err != nil {
		return model.Memo{}, fmt.Errorf("creating memo: %w", err)
	}

	if err := insertAttachments(ctx, tx, memo.ID, memo.Attachments); err != nil {
		return model.Memo{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Memo{}, fmt.Errorf("committing memo: %w", err)
	}
	return memo, nil
}

// UpdateMemo overwrites a memo's content and replaces its attachment list
// (clear-then-add-all) in one transaction.
func (s *SQLiteStore) UpdateMemo(ctx context.Context, memo model.Memo) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE memos SET content = ? WHERE id = ?",
		memo.Content, memo.ID,
	)
	if err != nil {
		return fmt.Errorf("updating memo %s: %w", memo.ID, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("memo %s: %w", memo.ID, ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM memo_attachments WHERE memo_id = ?", memo.ID); err != nil {
		return fmt.Errorf("clearing memo attachments: %w", err)
	}
	if err := insertAttachments(ctx, tx, memo.ID, memo.Attachments); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteMemo removes a memo by id. The CASCADE on memo_attachments removes
// its attachment rows.
func (s *SQLiteStore) DeleteMemo(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM memos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting memo %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("memo %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetMemoByID retrieves a single memo by id, attachments included.
func (s *SQLiteStore) GetMemoByID(ctx context.Context, id string) (*model.Memo, error) {
	var memo model.Memo
	err := s.db.QueryRowxContext(ctx,
		"SELECT id, content FROM memos WHERE id = ?", id,
	).Scan(&memo.ID, &memo.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("memo %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting memo %s: %w", id, err)
	}

	var attachments []string
	err = s.db.SelectContext(ctx, &attachments, `
		SELECT attachment_url FROM memo_attachments
		WHERE memo_id = ?
		ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("loading attachments for memo %s: %w", id, err)
	}
	memo.Attachments = attachments

	return &memo, nil
}

// insertAttachments writes the ordered attachment rows for a memo inside tx.
func insertAttachments(ctx context.Context, tx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}, memoID string, urls []string) error {
	for i, url := range urls {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO memo_attachments (memo_id, attachment_url, position) VALUES (?, ?, ?)",
			memoID, url, i); err != nil {
			return fmt.Errorf("inserting attachment %d for memo %s: %w", i, memoID, err)
		}
	}
	return nil
}
