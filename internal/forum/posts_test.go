package forum

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPostService(posts *MockPostRepo, boards *MockBoardRepo, topics *MockTopicRepo, likes *MockLikeRepo, comments *MockCommentRepo) *PostService {
	logger := zap.NewNop().Sugar()
	return NewPostService(posts, boards, topics, likes, comments, 10, 100, logger)
}

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("new post starts with zero counters", func(t *testing.T) {
		posts := &MockPostRepo{}
		boards := &MockBoardRepo{}
		topics := &MockTopicRepo{}
		svc := newTestPostService(posts, boards, topics, &MockLikeRepo{}, &MockCommentRepo{})

		boards.On("GetByCategory", ctx, "커뮤니티").Return(&Board{ID: 1, Category: "커뮤니티"}, nil)
		topics.On("GetOrCreate", ctx, "일상").Return(&Topic{ID: 7, Text: "일상", RefCount: 3}, nil)
		posts.On("Create", ctx, mock.MatchedBy(func(p *Post) bool {
			return p.View == 0 && p.Like == 0 && p.Report == 0 &&
				p.BoardID == 1 && p.TopicID == 7 && p.MBTI == "INTP"
		})).Return(int64(42), nil)
		posts.On("Get", ctx, int64(42), int64(5)).Return(&PostView{ID: 42, Title: "hello"}, nil)

		detail, err := svc.Create(ctx, 5, CreatePostInput{
			Category: "커뮤니티",
			Topic:    "일상",
			MBTI:     "intp",
			Title:    "hello",
			Content:  "first post here",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), detail.Post.ID)
		assert.Empty(t, detail.Comments)
		assert.NotNil(t, detail.Comments)
		posts.AssertExpectations(t)
		topics.AssertExpectations(t)
	})

	t.Run("validation failures keep the post unwritten", func(t *testing.T) {
		testCases := []struct {
			name string
			in   CreatePostInput
		}{
			{name: "missing category", in: CreatePostInput{Topic: "일상", MBTI: "INTP", Title: "t", Content: "long enough"}},
			{name: "invalid mbti", in: CreatePostInput{Category: "커뮤니티", Topic: "일상", MBTI: "ABCD", Title: "t", Content: "long enough"}},
			{name: "missing title", in: CreatePostInput{Category: "커뮤니티", Topic: "일상", MBTI: "INTP", Content: "long enough"}},
			{name: "content too short", in: CreatePostInput{Category: "커뮤니티", Topic: "일상", MBTI: "INTP", Title: "t", Content: "abcd"}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				posts := &MockPostRepo{}
				boards := &MockBoardRepo{}
				topics := &MockTopicRepo{}
				svc := newTestPostService(posts, boards, topics, &MockLikeRepo{}, &MockCommentRepo{})

				boards.On("GetByCategory", ctx, mock.Anything).Return(&Board{ID: 1}, nil).Maybe()
				topics.On("GetOrCreate", ctx, mock.Anything).Return(&Topic{ID: 7}, nil).Maybe()

				_, err := svc.Create(ctx, 5, tc.in)
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("unknown category is a validation error", func(t *testing.T) {
		boards := &MockBoardRepo{}
		svc := newTestPostService(&MockPostRepo{}, boards, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		boards.On("GetByCategory", ctx, "없는게시판").Return(nil, ErrNotFound)

		_, err := svc.Create(ctx, 5, CreatePostInput{
			Category: "없는게시판", Topic: "일상", MBTI: "INTP", Title: "t", Content: "long enough",
		})
		assert.True(t, IsValidation(err))
	})
}

func TestPostService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("reading increments the view counter first", func(t *testing.T) {
		posts := &MockPostRepo{}
		comments := &MockCommentRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, comments)

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42}, nil)
		posts.On("IncrementView", ctx, int64(42)).Return(nil)
		posts.On("Get", ctx, int64(42), int64(5)).Return(&PostView{ID: 42, View: 8}, nil)
		comments.On("ListByPost", ctx, int64(42), int64(5), CommentOrderTime).
			Return([]CommentView{{ID: 1}}, nil)

		detail, err := svc.Get(ctx, 5, 42, "")
		require.NoError(t, err)
		assert.Equal(t, 8, detail.Post.View)
		assert.Len(t, detail.Comments, 1)
		posts.AssertExpectations(t)
	})

	t.Run("hidden post is not counted as a view", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42, Hidden: true}, nil)

		_, err := svc.Get(ctx, 5, 42, "")
		assert.ErrorIs(t, err, ErrHidden)
		posts.AssertNotCalled(t, "IncrementView", mock.Anything, mock.Anything)
	})

	t.Run("missing post", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(99)).Return(nil, ErrNotFound)

		_, err := svc.Get(ctx, 5, 99, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("non-owner cannot edit", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42, UserID: 1}, nil)

		_, err := svc.Update(ctx, 2, 42, "new title", "new content")
		assert.ErrorIs(t, err, ErrNotOwner)
		posts.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner edit rewrites content", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42, UserID: 1, Like: 9}, nil)
		posts.On("UpdateContent", ctx, int64(42), "new title", "new content").Return(nil)
		posts.On("Get", ctx, int64(42), int64(1)).Return(&PostView{ID: 42, Like: 0}, nil)

		view, err := svc.Update(ctx, 1, 42, "new title", "new content")
		require.NoError(t, err)
		assert.Equal(t, 0, view.Like)
		posts.AssertExpectations(t)
	})

	t.Run("title and content both required", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42, UserID: 1}, nil)

		_, err := svc.Update(ctx, 1, 42, "", "content")
		assert.True(t, IsValidation(err))
		_, err = svc.Update(ctx, 1, 42, "title", "")
		assert.True(t, IsValidation(err))
	})
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner delete", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42, UserID: 1}, nil)
		posts.On("Delete", ctx, int64(42)).Return(nil)

		require.NoError(t, svc.Delete(ctx, 1, 42))
		posts.AssertExpectations(t)
	})

	t.Run("non-owner delete rejected", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42, UserID: 1}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, 2, 42), ErrNotOwner)
		posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing post surfaces not-found", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(99)).Return(nil, ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 1, 99), ErrNotFound)
	})
}

func TestPostService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid mbti filter is dropped not rejected", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("List", ctx, mock.MatchedBy(func(f PostFilter) bool {
			return f.MBTI == "" && f.Order == OrderCreate
		})).Return([]PostSummary{}, nil)

		_, err := svc.List(ctx, 5, ListPostsInput{MBTI: "XXTP"})
		require.NoError(t, err)
		posts.AssertExpectations(t)
	})

	t.Run("valid mbti filter is applied upper-cased", func(t *testing.T) {
		posts := &MockPostRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		posts.On("List", ctx, mock.MatchedBy(func(f PostFilter) bool {
			return f.MBTI == "INTP"
		})).Return([]PostSummary{}, nil)

		_, err := svc.List(ctx, 5, ListPostsInput{MBTI: "intp"})
		require.NoError(t, err)
	})

	t.Run("unknown topics short-circuit to empty", func(t *testing.T) {
		posts := &MockPostRepo{}
		topics := &MockTopicRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, topics, &MockLikeRepo{}, &MockCommentRepo{})

		topics.On("IDsByTexts", ctx, []string{"없는토픽"}).Return([]int64{}, nil)

		got, err := svc.List(ctx, 5, ListPostsInput{Topic: "없는토픽"})
		require.NoError(t, err)
		assert.Empty(t, got)
		posts.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		boards := &MockBoardRepo{}
		svc := newTestPostService(&MockPostRepo{}, boards, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

		boards.On("GetByCategory", ctx, "없는게시판").Return(nil, ErrNotFound)

		_, err := svc.List(ctx, 5, ListPostsInput{Category: "없는게시판"})
		assert.True(t, IsValidation(err))
	})

	t.Run("pagination defaults and cap", func(t *testing.T) {
		testCases := []struct {
			name       string
			size, page int
			wantLimit  int
			wantOffset int
		}{
			{name: "defaults", size: 0, page: 0, wantLimit: 10, wantOffset: 0},
			{name: "second page", size: 20, page: 3, wantLimit: 20, wantOffset: 40},
			{name: "capped size", size: 500, page: 1, wantLimit: 100, wantOffset: 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				posts := &MockPostRepo{}
				svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, &MockLikeRepo{}, &MockCommentRepo{})

				posts.On("List", ctx, mock.MatchedBy(func(f PostFilter) bool {
					return f.Limit == tc.wantLimit && f.Offset == tc.wantOffset
				})).Return([]PostSummary{}, nil)

				_, err := svc.List(ctx, 5, ListPostsInput{PageSize: tc.size, PageNum: tc.page})
				require.NoError(t, err)
				posts.AssertExpectations(t)
			})
		}
	})
}

func TestPostService_Like(t *testing.T) {
	ctx := context.Background()

	t.Run("first like succeeds", func(t *testing.T) {
		posts := &MockPostRepo{}
		likes := &MockLikeRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, likes, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42}, nil)
		likes.On("LikePost", ctx, int64(5), int64(42)).Return(true, nil)
		posts.On("Get", ctx, int64(42), int64(5)).Return(&PostView{ID: 42, Like: 1, IsLiked: true}, nil)

		view, err := svc.Like(ctx, 5, 42)
		require.NoError(t, err)
		assert.True(t, view.IsLiked)
		assert.Equal(t, 1, view.Like)
	})

	t.Run("second like is acknowledged without mutation", func(t *testing.T) {
		posts := &MockPostRepo{}
		likes := &MockLikeRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, likes, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42}, nil)
		likes.On("LikePost", ctx, int64(5), int64(42)).Return(false, nil)

		_, err := svc.Like(ctx, 5, 42)
		assert.ErrorIs(t, err, ErrAlreadyLiked)
	})

	t.Run("unlike without a like never decrements", func(t *testing.T) {
		posts := &MockPostRepo{}
		likes := &MockLikeRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, likes, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(42)).Return(&Post{ID: 42}, nil)
		likes.On("UnlikePost", ctx, int64(5), int64(42)).Return(false, nil)

		assert.ErrorIs(t, svc.Unlike(ctx, 5, 42), ErrNotLiked)
	})

	t.Run("liking a missing post fails", func(t *testing.T) {
		posts := &MockPostRepo{}
		likes := &MockLikeRepo{}
		svc := newTestPostService(posts, &MockBoardRepo{}, &MockTopicRepo{}, likes, &MockCommentRepo{})

		posts.On("GetMeta", ctx, int64(99)).Return(nil, ErrNotFound)

		_, err := svc.Like(ctx, 5, 99)
		assert.ErrorIs(t, err, ErrNotFound)
		likes.AssertNotCalled(t, "LikePost", mock.Anything, mock.Anything, mock.Anything)
	})
}
