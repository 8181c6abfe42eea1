package forum

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const maxCommentContentLen = 200

type CreateCommentInput struct {
	PostID   int64
	Content  string
	ParentID *int64
}

type CommentService struct {
	comments CommentRepo
	posts    PostRepo
	likes    LikeRepo
	logger   *zap.SugaredLogger
}

func NewCommentService(comments CommentRepo, posts PostRepo, likes LikeRepo, logger *zap.SugaredLogger) *CommentService {
	return &CommentService{comments: comments, posts: posts, likes: likes, logger: logger}
}

// Create attaches a comment to a post. An optional parent id must reference
// an existing comment that has not been soft-deleted.
func (s *CommentService) Create(ctx context.Context, userID int64, in CreateCommentInput) (*CommentView, error) {
	if in.Content == "" {
		return nil, invalidf(`"content" is empty`)
	}
	if len([]rune(in.Content)) > maxCommentContentLen {
		return nil, invalidf(`"content" is longer than %d characters`, maxCommentContentLen)
	}

	if _, err := s.posts.GetMeta(ctx, in.PostID); err != nil {
		if err == ErrNotFound {
			return nil, invalidf("no such post %d", in.PostID)
		}
		return nil, fmt.Errorf("resolve post: %w", err)
	}

	if in.ParentID != nil {
		parent, err := s.comments.GetMeta(ctx, *in.ParentID)
		if err != nil {
			if err == ErrNotFound {
				return nil, invalidf("no such parent comment %d", *in.ParentID)
			}
			return nil, fmt.Errorf("resolve parent comment: %w", err)
		}
		if parent.DeleteAt != nil {
			return nil, invalidf("parent comment %d is deleted", *in.ParentID)
		}
		if parent.PostID != in.PostID {
			return nil, invalidf("parent comment %d belongs to another post", *in.ParentID)
		}
	}

	id, err := s.comments.Create(ctx, &Comment{
		PostID:   in.PostID,
		UserID:   userID,
		ParentID: in.ParentID,
		Content:  in.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return s.comments.Get(ctx, id, userID)
}

// Update replaces the content. Author-only; soft-deleted comments are
// frozen at the sentinel and cannot be edited.
func (s *CommentService) Update(ctx context.Context, userID, id int64, content string) (*CommentView, error) {
	meta, err := s.comments.GetMeta(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta.UserID != userID {
		return nil, ErrNotOwner
	}
	if content == "" {
		return nil, invalidf(`"content" is empty`)
	}
	if len([]rune(content)) > maxCommentContentLen {
		return nil, invalidf(`"content" is longer than %d characters`, maxCommentContentLen)
	}
	if meta.DeleteAt != nil {
		return nil, ErrAlreadyDeleted
	}

	if err := s.comments.UpdateContent(ctx, id, content); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return s.comments.Get(ctx, id, userID)
}

// Delete soft-deletes: the content becomes the sentinel and delete_at is
// stamped. Double deletion is idempotent and answers ErrAlreadyDeleted;
// like and report counters keep their values.
func (s *CommentService) Delete(ctx context.Context, userID, id int64) (*CommentView, error) {
	meta, err := s.comments.GetMeta(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta.UserID != userID {
		return nil, ErrNotOwner
	}
	if meta.DeleteAt != nil {
		return nil, ErrAlreadyDeleted
	}

	deleted, err := s.comments.SoftDelete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete comment: %w", err)
	}
	if !deleted {
		// Lost the race with a concurrent delete; same answer either way.
		return nil, ErrAlreadyDeleted
	}
	s.logger.Infow("Comment deleted", "comment_id", id, "user_id", userID)
	return s.comments.Get(ctx, id, userID)
}

// Like mirrors PostService.Like for comments.
func (s *CommentService) Like(ctx context.Context, userID, id int64) (*CommentView, error) {
	if _, err := s.comments.GetMeta(ctx, id); err != nil {
		return nil, err
	}
	created, err := s.likes.LikeComment(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("like comment: %w", err)
	}
	if !created {
		return nil, ErrAlreadyLiked
	}
	return s.comments.Get(ctx, id, userID)
}

// Unlike mirrors PostService.Unlike for comments.
func (s *CommentService) Unlike(ctx context.Context, userID, id int64) error {
	if _, err := s.comments.GetMeta(ctx, id); err != nil {
		return err
	}
	removed, err := s.likes.UnlikeComment(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("unlike comment: %w", err)
	}
	if !removed {
		return ErrNotLiked
	}
	return nil
}
