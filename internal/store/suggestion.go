package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/suggestion-board/board/types"
)

const suggestionColumns = `id, author_id, suggestion, created_at, updated_at`

// SuggestionRepository handles persistence for suggestions.
type SuggestionRepository struct {
	db *sql.DB
}

func NewSuggestionRepository(db *sql.DB) *SuggestionRepository {
	return &SuggestionRepository{db: db}
}

func (r *SuggestionRepository) Get(ctx context.Context, id int) (types.Suggestion, error) {
	const query = `SELECT ` + suggestionColumns + ` FROM suggestions WHERE id = $1`
	var suggestion types.Suggestion
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&suggestion.ID,
		&suggestion.AuthorID,
		&suggestion.Text,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Suggestion{}, ErrNotFound
		}
		return types.Suggestion{}, err
	}
	return suggestion, nil
}

// ListNewestFirst returns every suggestion ordered by descending id.
func (r *SuggestionRepository) ListNewestFirst(ctx context.Context) ([]types.Suggestion, error) {
	const query = `SELECT ` + suggestionColumns + ` FROM suggestions ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suggestions := make([]types.Suggestion, 0)
	for rows.Next() {
		var suggestion types.Suggestion
		if err := rows.Scan(
			&suggestion.ID,
			&suggestion.AuthorID,
			&suggestion.Text,
			&suggestion.CreatedAt,
			&suggestion.UpdatedAt,
		); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *SuggestionRepository) CountByAuthor(ctx context.Context, authorID int) (int, error) {
	const query = `SELECT COUNT(1) FROM suggestions WHERE author_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, query, authorID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SuggestionRepository) Create(ctx context.Context, suggestion types.Suggestion) (types.Suggestion, error) {
	now := time.Now()
	suggestion.CreatedAt = now
	suggestion.UpdatedAt = now

	const query = `
		INSERT INTO suggestions (author_id, suggestion, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		suggestion.AuthorID,
		suggestion.Text,
		suggestion.CreatedAt,
		suggestion.UpdatedAt,
	).Scan(&suggestion.ID); err != nil {
		return types.Suggestion{}, err
	}
	return suggestion, nil
}

// UpdateText overwrites the text of an existing suggestion.
func (r *SuggestionRepository) UpdateText(ctx context.Context, id int, text string) (types.Suggestion, error) {
	const query = `
		UPDATE suggestions
		SET suggestion = $1,
			updated_at = $2
		WHERE id = $3
		RETURNING ` + suggestionColumns
	var suggestion types.Suggestion
	err := r.db.QueryRowContext(ctx, query, text, time.Now(), id).Scan(
		&suggestion.ID,
		&suggestion.AuthorID,
		&suggestion.Text,
		&suggestion.CreatedAt,
		&suggestion.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Suggestion{}, ErrNotFound
		}
		return types.Suggestion{}, err
	}
	return suggestion, nil
}

// Delete removes a suggestion. Its likes go with it through the
// ON DELETE CASCADE foreign key.
func (r *SuggestionRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM suggestions WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
