package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Boards struct {
	pool *pgxpool.Pool
}

func NewBoards(pool *pgxpool.Pool) *Boards {
	return &Boards{pool: pool}
}

var _ forum.BoardRepo = (*Boards)(nil)

func (r *Boards) List(ctx context.Context) ([]forum.BoardWithTopics, error) {
	query := `
		SELECT b.id, b.index, b.category, a.index, h.text
		FROM board b
		LEFT JOIN board_hashtag_assoc a ON a.board_id = b.id AND a.hidden = FALSE
		LEFT JOIN hashtag h ON h.id = a.hashtag_id
		WHERE b.hidden = FALSE
		ORDER BY b.index, a.index
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query boards: %w", err)
	}
	defer rows.Close()

	var out []forum.BoardWithTopics
	byID := map[int64]int{}
	for rows.Next() {
		var (
			id         int64
			index      int16
			category   string
			topicIndex *int16
			topicText  *string
		)
		if err := rows.Scan(&id, &index, &category, &topicIndex, &topicText); err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		pos, ok := byID[id]
		if !ok {
			out = append(out, forum.BoardWithTopics{
				Board:  forum.Board{ID: id, Index: index, Category: category},
				Topics: []forum.BoardTopic{},
			})
			pos = len(out) - 1
			byID[id] = pos
		}
		if topicIndex != nil && topicText != nil {
			out[pos].Topics = append(out[pos].Topics, forum.BoardTopic{Index: *topicIndex, Topic: *topicText})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boards: %w", err)
	}
	return out, nil
}

func (r *Boards) GetByCategory(ctx context.Context, category string) (*forum.Board, error) {
	var b forum.Board
	err := r.pool.QueryRow(ctx,
		`SELECT id, index, category, hidden FROM board WHERE category = $1 AND hidden = FALSE`,
		category,
	).Scan(&b.ID, &b.Index, &b.Category, &b.Hidden)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get board by category: %w", err)
	}
	return &b, nil
}
