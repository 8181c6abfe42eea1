package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Topics struct {
	pool *pgxpool.Pool
}

func NewTopics(pool *pgxpool.Pool) *Topics {
	return &Topics{pool: pool}
}

var _ forum.TopicRepo = (*Topics)(nil)

// GetOrCreate upserts by text. A fresh topic starts at ref_count 1; a reused
// one is incremented, both in a single statement.
func (r *Topics) GetOrCreate(ctx context.Context, text string) (*forum.Topic, error) {
	var t forum.Topic
	err := r.pool.QueryRow(ctx, `
		INSERT INTO hashtag (text, ref_count) VALUES ($1, 1)
		ON CONFLICT (text) DO UPDATE SET ref_count = hashtag.ref_count + 1
		RETURNING id, text, ref_count
	`, text).Scan(&t.ID, &t.Text, &t.RefCount)
	if err != nil {
		return nil, fmt.Errorf("upsert topic: %w", err)
	}
	return &t, nil
}

func (r *Topics) IDsByTexts(ctx context.Context, texts []string) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM hashtag WHERE text = ANY($1)`, texts)
	if err != nil {
		return nil, fmt.Errorf("query topics by text: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan topic id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate topics: %w", err)
	}
	return ids, nil
}
