package forum

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	minPostContentLen = 5
	maxPostTitleLen   = 50
)

type CreatePostInput struct {
	Category string
	Topic    string
	MBTI     string
	Title    string
	Content  string
}

type ListPostsInput struct {
	Category string
	Topic    string
	MBTI     string
	Order    string
	PageSize int
	PageNum  int
}

// PostDetail is a post projection together with its visible comments.
type PostDetail struct {
	Post     PostView
	Comments []CommentView
}

type PostService struct {
	posts    PostRepo
	boards   BoardRepo
	topics   TopicRepo
	likes    LikeRepo
	comments CommentRepo
	logger   *zap.SugaredLogger

	defaultPageSize int
	maxPageSize     int
}

func NewPostService(posts PostRepo, boards BoardRepo, topics TopicRepo, likes LikeRepo, comments CommentRepo, defaultPageSize, maxPageSize int, logger *zap.SugaredLogger) *PostService {
	return &PostService{
		posts:           posts,
		boards:          boards,
		topics:          topics,
		likes:           likes,
		comments:        comments,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// Create validates the input, bumps the topic's reference count and writes
// the post with zeroed counters. Returns the full projection with an empty
// comment list.
func (s *PostService) Create(ctx context.Context, authorID int64, in CreatePostInput) (*PostDetail, error) {
	if in.Category == "" {
		return nil, invalidf(`data should have "category" field`)
	}
	board, err := s.boards.GetByCategory(ctx, in.Category)
	if err != nil {
		if err == ErrNotFound {
			return nil, invalidf("no such category %q", in.Category)
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}

	if in.Topic == "" {
		return nil, invalidf(`data should have "topic" field`)
	}
	topic, err := s.topics.GetOrCreate(ctx, in.Topic)
	if err != nil {
		return nil, fmt.Errorf("get or create topic: %w", err)
	}

	if in.MBTI == "" {
		return nil, invalidf(`data should have "mbti" field`)
	}
	mbti, ok := NormalizeMBTI(in.MBTI)
	if !ok {
		return nil, invalidf(`"mbti" characters are invalid`)
	}

	if in.Title == "" {
		return nil, invalidf(`data should have "title" field`)
	}
	if len([]rune(in.Title)) > maxPostTitleLen {
		return nil, invalidf(`"title" is longer than %d characters`, maxPostTitleLen)
	}
	if len([]rune(in.Content)) < minPostContentLen {
		return nil, invalidf(`"content" must be at least %d characters`, minPostContentLen)
	}

	id, err := s.posts.Create(ctx, &Post{
		BoardID: board.ID,
		TopicID: topic.ID,
		UserID:  authorID,
		MBTI:    mbti,
		Title:   in.Title,
		Content: in.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	view, err := s.posts.Get(ctx, id, authorID)
	if err != nil {
		return nil, fmt.Errorf("load created post: %w", err)
	}
	s.logger.Infow("Post created", "post_id", id, "board", board.Category, "topic", topic.Text)
	return &PostDetail{Post: *view, Comments: []CommentView{}}, nil
}

// Get returns the post with its visible comments. Reading is a write: the
// view counter is incremented once per call, before the projection is read.
// Hidden posts return ErrHidden without counting the view.
func (s *PostService) Get(ctx context.Context, viewerID, id int64, commentOrder string) (*PostDetail, error) {
	meta, err := s.posts.GetMeta(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta.Hidden {
		return nil, ErrHidden
	}

	if err := s.posts.IncrementView(ctx, id); err != nil {
		return nil, fmt.Errorf("increment view: %w", err)
	}

	view, err := s.posts.Get(ctx, id, viewerID)
	if err != nil {
		return nil, fmt.Errorf("load post: %w", err)
	}

	switch commentOrder {
	case CommentOrderTime, CommentOrderRecent, CommentOrderLike:
	default:
		commentOrder = CommentOrderTime
	}
	comments, err := s.comments.ListByPost(ctx, id, viewerID, commentOrder)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	return &PostDetail{Post: *view, Comments: comments}, nil
}

// Update replaces title and content. Author-only. Editing resets the post's
// likes: the association rows are cleared and the counter zeroed together.
func (s *PostService) Update(ctx context.Context, userID, id int64, title, content string) (*PostView, error) {
	meta, err := s.posts.GetMeta(ctx, id)
	if err != nil {
		return nil, err
	}
	if meta.UserID != userID {
		return nil, ErrNotOwner
	}
	if title == "" {
		return nil, invalidf(`data should have "title" field`)
	}
	if content == "" {
		return nil, invalidf(`data should have "content" field`)
	}
	if meta.Hidden {
		return nil, ErrHidden
	}

	if err := s.posts.UpdateContent(ctx, id, title, content); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return s.posts.Get(ctx, id, userID)
}

// Delete removes the post. Author-only; a missing id surfaces as ErrNotFound
// so the handler can answer with the idempotent no-content signal.
func (s *PostService) Delete(ctx context.Context, userID, id int64) error {
	meta, err := s.posts.GetMeta(ctx, id)
	if err != nil {
		return err
	}
	if meta.UserID != userID {
		return ErrNotOwner
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.logger.Infow("Post deleted", "post_id", id, "user_id", userID)
	return nil
}

// List applies the filters in fixed order (mbti, topic, category), sorts and
// paginates. An invalid mbti filter is dropped, not rejected; an unknown
// category is a validation error.
func (s *PostService) List(ctx context.Context, viewerID int64, in ListPostsInput) ([]PostSummary, error) {
	f := PostFilter{ViewerID: viewerID}

	if in.MBTI != "" {
		if mbti, ok := NormalizeMBTIFilter(in.MBTI); ok {
			f.MBTI = mbti
		}
	}

	if in.Topic != "" {
		texts := strings.Split(in.Topic, ",")
		ids, err := s.topics.IDsByTexts(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("resolve topics: %w", err)
		}
		if len(ids) == 0 {
			// None of the requested topics exist, so nothing can match.
			return []PostSummary{}, nil
		}
		f.TopicIDs = ids
	}

	if in.Category != "" {
		board, err := s.boards.GetByCategory(ctx, in.Category)
		if err != nil {
			if err == ErrNotFound {
				return nil, invalidf("no such category %q", in.Category)
			}
			return nil, fmt.Errorf("resolve category: %w", err)
		}
		f.BoardID = &board.ID
	}

	switch in.Order {
	case OrderView, OrderLike:
		f.Order = in.Order
	default:
		f.Order = OrderCreate
	}

	size := in.PageSize
	if size <= 0 {
		size = s.defaultPageSize
	}
	if size > s.maxPageSize {
		size = s.maxPageSize
	}
	page := in.PageNum
	if page < 1 {
		page = 1
	}
	f.Limit = size
	f.Offset = (page - 1) * size

	return s.posts.List(ctx, f)
}

// Like records that userID likes the post. The second and later calls are
// acknowledged with ErrAlreadyLiked and leave the counter untouched.
func (s *PostService) Like(ctx context.Context, userID, id int64) (*PostView, error) {
	if _, err := s.posts.GetMeta(ctx, id); err != nil {
		return nil, err
	}
	created, err := s.likes.LikePost(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("like post: %w", err)
	}
	if !created {
		return nil, ErrAlreadyLiked
	}
	return s.posts.Get(ctx, id, userID)
}

// Unlike removes the like. Unliking a never-liked post is ErrNotLiked and
// never decrements anything.
func (s *PostService) Unlike(ctx context.Context, userID, id int64) error {
	if _, err := s.posts.GetMeta(ctx, id); err != nil {
		return err
	}
	removed, err := s.likes.UnlikePost(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("unlike post: %w", err)
	}
	if !removed {
		return ErrNotLiked
	}
	return nil
}
