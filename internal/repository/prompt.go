package repository

import (
	"context"
	"database/sql"

	"github.com/promptforge/promptforge-go/internal/model"
)

// PromptRepository handles prompt persistence operations.
type PromptRepository struct {
	db *sql.DB
}

// NewPromptRepository creates a new PromptRepository.
func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

// Insert stores a generated prompt and sets the generated ID and creation
// time on the prompt struct.
func (r *PromptRepository) Insert(ctx context.Context, prompt *model.Prompt) error {
	query := `INSERT INTO prompts (user_id, category, idea, generated_prompt) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		prompt.UserID, prompt.Category, prompt.Idea, prompt.GeneratedPrompt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	prompt.ID = id

	// Read back the server-assigned creation timestamp.
	query = `SELECT created_at FROM prompts WHERE id = ?`
	return r.db.QueryRowContext(ctx, query, id).Scan(&prompt.CreatedAt)
}

// ListByUser retrieves all prompts owned by a user, newest first.
func (r *PromptRepository) ListByUser(ctx context.Context, userID int64) ([]model.Prompt, error) {
	query := `SELECT id, user_id, category, idea, generated_prompt, created_at
		FROM prompts WHERE user_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prompts []model.Prompt
	for rows.Next() {
		var p model.Prompt
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Category, &p.Idea, &p.GeneratedPrompt, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		prompts = append(prompts, p)
	}

	return prompts, rows.Err()
}

// DeleteByIDAndUser deletes a prompt only if it is owned by the given user.
// The ownership check is part of the delete predicate, so a missing prompt
// and another user's prompt are indistinguishable: both report not deleted.
func (r *PromptRepository) DeleteByIDAndUser(ctx context.Context, promptID, userID int64) (bool, error) {
	query := `DELETE FROM prompts WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, promptID, userID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
