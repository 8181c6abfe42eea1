package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Posts struct {
	pool *pgxpool.Pool
}

func NewPosts(pool *pgxpool.Pool) *Posts {
	return &Posts{pool: pool}
}

var _ forum.PostRepo = (*Posts)(nil)

func (r *Posts) Create(ctx context.Context, post *forum.Post) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO post (board_id, hashtag_id, user_id, mbti, title, content, view, "like", report, hidden)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0, 0, FALSE)
		RETURNING id
	`, post.BoardID, post.TopicID, post.UserID, post.MBTI, post.Title, post.Content).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	return id, nil
}

func (r *Posts) GetMeta(ctx context.Context, id int64) (*forum.Post, error) {
	var p forum.Post
	err := r.pool.QueryRow(ctx, `
		SELECT id, board_id, hashtag_id, user_id, mbti, title, content,
		       view, "like", report, hidden, create_at, update_at, delete_at, reserve_at
		FROM post WHERE id = $1
	`, id).Scan(
		&p.ID, &p.BoardID, &p.TopicID, &p.UserID, &p.MBTI, &p.Title, &p.Content,
		&p.View, &p.Like, &p.Report, &p.Hidden, &p.CreateAt, &p.UpdateAt, &p.DeleteAt, &p.ReserveAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &p, nil
}

const postViewQuery = `
	SELECT p.id, b.category, h.text, p.mbti, p.title, p.content,
	       p.view, p."like", p.report,
	       u.nickname, u.mbti, u.image,
	       EXISTS (SELECT 1 FROM like_post_assoc l WHERE l.post_id = p.id AND l.user_id = $2) AS is_liked,
	       p.create_at, p.update_at
	FROM post p
	JOIN board b ON b.id = p.board_id
	JOIN hashtag h ON h.id = p.hashtag_id
	JOIN users u ON u.id = p.user_id
	WHERE p.id = $1
`

func (r *Posts) Get(ctx context.Context, id, viewerID int64) (*forum.PostView, error) {
	var v forum.PostView
	err := r.pool.QueryRow(ctx, postViewQuery, id, viewerID).Scan(
		&v.ID, &v.Category, &v.Topic, &v.MBTI, &v.Title, &v.Content,
		&v.View, &v.Like, &v.Report,
		&v.Author.Nickname, &v.Author.MBTI, &v.Author.Image,
		&v.IsLiked, &v.CreateAt, &v.UpdateAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get post view: %w", err)
	}
	return &v, nil
}

func (r *Posts) IncrementView(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE post SET view = view + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment view: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return forum.ErrNotFound
	}
	return nil
}

// UpdateContent swaps title/content and resets the post's likes. The like
// rows and the cached counter change together so they can never disagree.
func (r *Posts) UpdateContent(ctx context.Context, id int64, title, content string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM like_post_assoc WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("clear post likes: %w", err)
	}
	tag, err := tx.Exec(ctx, `
		UPDATE post SET title = $2, content = $3, "like" = 0, update_at = now() WHERE id = $1
	`, id, title, content)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return forum.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *Posts) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return forum.ErrNotFound
	}
	return nil
}

// buildPostListQuery assembles the filtered, ordered, paginated list query.
// Split out so the SQL assembly is testable without a database.
func buildPostListQuery(f forum.PostFilter) (string, []any) {
	var sb strings.Builder
	args := []any{f.ViewerID}

	sb.WriteString(`
		SELECT p.id, b.category, h.text, p.mbti, p.title,
		       p.view, p."like",
		       u.nickname, u.mbti, u.image,
		       EXISTS (SELECT 1 FROM like_post_assoc l WHERE l.post_id = p.id AND l.user_id = $1) AS is_liked,
		       p.create_at, p.update_at
		FROM post p
		JOIN board b ON b.id = p.board_id
		JOIN hashtag h ON h.id = p.hashtag_id
		JOIN users u ON u.id = p.user_id
		WHERE p.hidden = FALSE`)

	if f.MBTI != "" {
		args = append(args, f.MBTI)
		fmt.Fprintf(&sb, " AND p.mbti = $%d", len(args))
	}
	if len(f.TopicIDs) > 0 {
		args = append(args, f.TopicIDs)
		fmt.Fprintf(&sb, " AND p.hashtag_id = ANY($%d)", len(args))
	}
	if f.BoardID != nil {
		args = append(args, *f.BoardID)
		fmt.Fprintf(&sb, " AND p.board_id = $%d", len(args))
	}

	switch f.Order {
	case forum.OrderView:
		sb.WriteString(" ORDER BY p.view DESC, p.id DESC")
	case forum.OrderLike:
		sb.WriteString(` ORDER BY p."like" DESC, p.id DESC`)
	default:
		sb.WriteString(" ORDER BY p.create_at DESC, p.id DESC")
	}

	args = append(args, f.Limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	args = append(args, f.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args
}

func (r *Posts) List(ctx context.Context, f forum.PostFilter) ([]forum.PostSummary, error) {
	query, args := buildPostListQuery(f)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	out := []forum.PostSummary{}
	for rows.Next() {
		var s forum.PostSummary
		if err := rows.Scan(
			&s.ID, &s.Category, &s.Topic, &s.MBTI, &s.Title,
			&s.View, &s.Like,
			&s.Author.Nickname, &s.Author.MBTI, &s.Author.Image,
			&s.IsLiked, &s.CreateAt, &s.UpdateAt,
		); err != nil {
			return nil, fmt.Errorf("scan post summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}
