package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Penalties struct {
	pool *pgxpool.Pool
}

func NewPenalties(pool *pgxpool.Pool) *Penalties {
	return &Penalties{pool: pool}
}

var _ forum.PenaltyRepo = (*Penalties)(nil)

func (r *Penalties) Create(ctx context.Context, penalty *forum.Penalty) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO penalty (user_id, start_at, end_at, memo)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, penalty.UserID, penalty.StartAt, penalty.EndAt, penalty.Memo).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert penalty: %w", err)
	}
	return id, nil
}

func (r *Penalties) ListByUser(ctx context.Context, userID int64) ([]forum.Penalty, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, start_at, end_at, memo, create_at, update_at
		FROM penalty WHERE user_id = $1 ORDER BY start_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query penalties: %w", err)
	}
	defer rows.Close()

	var out []forum.Penalty
	for rows.Next() {
		var p forum.Penalty
		if err := rows.Scan(&p.ID, &p.UserID, &p.StartAt, &p.EndAt, &p.Memo, &p.CreateAt, &p.UpdateAt); err != nil {
			return nil, fmt.Errorf("scan penalty: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate penalties: %w", err)
	}
	return out, nil
}
