package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Users struct {
	pool *pgxpool.Pool
}

func NewUsers(pool *pgxpool.Pool) *Users {
	return &Users{pool: pool}
}

var _ forum.UserRepo = (*Users)(nil)

func (r *Users) Get(ctx context.Context, id int64) (*forum.User, error) {
	var u forum.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, external_id, nickname, mbti, image, create_at, update_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.ExternalID, &u.Nickname, &u.MBTI, &u.Image, &u.CreateAt, &u.UpdateAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetOrCreateByExternalID upserts on external_id. On repeat sign-ins the
// provider's nickname and image refresh the row; mbti is only set on first
// creation so the user keeps whatever they chose in-app.
func (r *Users) GetOrCreateByExternalID(ctx context.Context, externalID string, profile forum.Profile) (*forum.User, error) {
	var u forum.User
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (external_id, nickname, mbti, image)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (external_id) DO UPDATE
		SET nickname = EXCLUDED.nickname, image = EXCLUDED.image, update_at = now()
		RETURNING id, external_id, nickname, mbti, image, create_at, update_at
	`, externalID, profile.Nickname, profile.MBTI, profile.Image).Scan(
		&u.ID, &u.ExternalID, &u.Nickname, &u.MBTI, &u.Image, &u.CreateAt, &u.UpdateAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}
