package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/suggestion-board/board/types"
)

// LikeRepository handles persistence for the likes ledger.
type LikeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Add records a like and reports whether a new row was written.
// A pair that is already present is left untouched.
func (r *LikeRepository) Add(ctx context.Context, userID, suggestionID int) (bool, error) {
	const query = `
		INSERT INTO likes (user_id, suggestion_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, suggestion_id) DO NOTHING`
	result, err := r.db.ExecContext(ctx, query, userID, suggestionID, time.Now())
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// List returns the full ledger ordered by descending suggestion id.
func (r *LikeRepository) List(ctx context.Context) ([]types.Like, error) {
	const query = `
		SELECT user_id, suggestion_id, created_at
		FROM likes
		ORDER BY suggestion_id DESC, user_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := make([]types.Like, 0)
	for rows.Next() {
		var like types.Like
		if err := rows.Scan(&like.UserID, &like.SuggestionID, &like.CreatedAt); err != nil {
			return nil, err
		}
		likes = append(likes, like)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *LikeRepository) CountByUser(ctx context.Context, userID int) (int, error) {
	const query = `SELECT COUNT(1) FROM likes WHERE user_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// Likers returns the users who liked a suggestion, oldest like first.
func (r *LikeRepository) Likers(ctx context.Context, suggestionID int) ([]types.User, error) {
	const query = `
		SELECT u.id, u.name, u.alias, u.email, u.password_hash, u.created_at, u.updated_at
		FROM users u
		JOIN likes l ON l.user_id = u.id
		WHERE l.suggestion_id = $1
		ORDER BY l.created_at, u.id`
	rows, err := r.db.QueryContext(ctx, query, suggestionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}
