package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

// Likes keeps the association rows and the cached counters consistent:
// a counter only moves inside the same transaction that inserted or
// deleted the matching association row.
type Likes struct {
	pool *pgxpool.Pool
}

func NewLikes(pool *pgxpool.Pool) *Likes {
	return &Likes{pool: pool}
}

var _ forum.LikeRepo = (*Likes)(nil)

func (r *Likes) like(ctx context.Context, insert, bump string, userID, targetID int64) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, insert, userID, targetID)
	if err != nil {
		return false, fmt.Errorf("insert like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	if _, err := tx.Exec(ctx, bump, targetID); err != nil {
		return false, fmt.Errorf("bump like counter: %w", err)
	}
	return true, tx.Commit(ctx)
}

func (r *Likes) unlike(ctx context.Context, del, drop string, userID, targetID int64) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, del, userID, targetID)
	if err != nil {
		return false, fmt.Errorf("delete like: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	if _, err := tx.Exec(ctx, drop, targetID); err != nil {
		return false, fmt.Errorf("drop like counter: %w", err)
	}
	return true, tx.Commit(ctx)
}

func (r *Likes) LikePost(ctx context.Context, userID, postID int64) (bool, error) {
	return r.like(ctx,
		`INSERT INTO like_post_assoc (user_id, post_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		`UPDATE post SET "like" = "like" + 1 WHERE id = $1`,
		userID, postID)
}

func (r *Likes) UnlikePost(ctx context.Context, userID, postID int64) (bool, error) {
	return r.unlike(ctx,
		`DELETE FROM like_post_assoc WHERE user_id = $1 AND post_id = $2`,
		`UPDATE post SET "like" = GREATEST("like" - 1, 0) WHERE id = $1`,
		userID, postID)
}

func (r *Likes) LikeComment(ctx context.Context, userID, commentID int64) (bool, error) {
	return r.like(ctx,
		`INSERT INTO like_comment_assoc (user_id, comment_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		`UPDATE comment SET "like" = "like" + 1 WHERE id = $1`,
		userID, commentID)
}

func (r *Likes) UnlikeComment(ctx context.Context, userID, commentID int64) (bool, error) {
	return r.unlike(ctx,
		`DELETE FROM like_comment_assoc WHERE user_id = $1 AND comment_id = $2`,
		`UPDATE comment SET "like" = GREATEST("like" - 1, 0) WHERE id = $1`,
		userID, commentID)
}
