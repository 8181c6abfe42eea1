package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

type Comments struct {
	pool *pgxpool.Pool
}

func NewComments(pool *pgxpool.Pool) *Comments {
	return &Comments{pool: pool}
}

var _ forum.CommentRepo = (*Comments)(nil)

func (r *Comments) Create(ctx context.Context, comment *forum.Comment) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comment (post_id, user_id, parent_comment_id, content, "like", report, hidden)
		VALUES ($1, $2, $3, $4, 0, 0, FALSE)
		RETURNING id
	`, comment.PostID, comment.UserID, comment.ParentID, comment.Content).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert comment: %w", err)
	}
	return id, nil
}

func (r *Comments) GetMeta(ctx context.Context, id int64) (*forum.Comment, error) {
	var c forum.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, post_id, user_id, parent_comment_id, content,
		       "like", report, hidden, create_at, update_at, delete_at
		FROM comment WHERE id = $1
	`, id).Scan(
		&c.ID, &c.PostID, &c.UserID, &c.ParentID, &c.Content,
		&c.Like, &c.Report, &c.Hidden, &c.CreateAt, &c.UpdateAt, &c.DeleteAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &c, nil
}

const commentViewQuery = `
	SELECT c.id, c.post_id, c.parent_comment_id, c.content, c."like", c.report,
	       u.nickname, u.mbti, u.image,
	       EXISTS (SELECT 1 FROM like_comment_assoc l WHERE l.comment_id = c.id AND l.user_id = $2) AS is_liked,
	       c.create_at, c.update_at
	FROM comment c
	JOIN users u ON u.id = c.user_id
`

func scanCommentView(row pgx.Row) (*forum.CommentView, error) {
	var v forum.CommentView
	err := row.Scan(
		&v.ID, &v.PostID, &v.ParentID, &v.Content, &v.Like, &v.Report,
		&v.Author.Nickname, &v.Author.MBTI, &v.Author.Image,
		&v.IsLiked, &v.CreateAt, &v.UpdateAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Comments) Get(ctx context.Context, id, viewerID int64) (*forum.CommentView, error) {
	v, err := scanCommentView(r.pool.QueryRow(ctx, commentViewQuery+` WHERE c.id = $1`, id, viewerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, forum.ErrNotFound
		}
		return nil, fmt.Errorf("get comment view: %w", err)
	}
	return v, nil
}

func (r *Comments) UpdateContent(ctx context.Context, id int64, content string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comment SET content = $2, update_at = now() WHERE id = $1 AND delete_at IS NULL
	`, id, content)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return forum.ErrNotFound
	}
	return nil
}

// SoftDelete stamps delete_at once; a second call matches no row and
// reports removed=false.
func (r *Comments) SoftDelete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comment SET content = $2, delete_at = now(), update_at = now()
		WHERE id = $1 AND delete_at IS NULL
	`, id, forum.DeletedCommentContent)
	if err != nil {
		return false, fmt.Errorf("soft delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Comments) ListByPost(ctx context.Context, postID, viewerID int64, order string) ([]forum.CommentView, error) {
	var orderClause string
	switch order {
	case forum.CommentOrderRecent:
		orderClause = " ORDER BY c.create_at DESC, c.id DESC"
	case forum.CommentOrderLike:
		orderClause = ` ORDER BY c."like" DESC, c.id ASC`
	default:
		orderClause = " ORDER BY c.create_at ASC, c.id ASC"
	}

	rows, err := r.pool.Query(ctx,
		commentViewQuery+` WHERE c.post_id = $1 AND c.hidden = FALSE`+orderClause,
		postID, viewerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	out := []forum.CommentView{}
	for rows.Next() {
		var v forum.CommentView
		if err := rows.Scan(
			&v.ID, &v.PostID, &v.ParentID, &v.Content, &v.Like, &v.Report,
			&v.Author.Nickname, &v.Author.MBTI, &v.Author.Image,
			&v.IsLiked, &v.CreateAt, &v.UpdateAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return out, nil
}
