package forum

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBoardRepo struct {
	mock.Mock
}

func (m *MockBoardRepo) List(ctx context.Context) ([]BoardWithTopics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BoardWithTopics), args.Error(1)
}

func (m *MockBoardRepo) GetByCategory(ctx context.Context, category string) (*Board, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Board), args.Error(1)
}

var _ BoardRepo = (*MockBoardRepo)(nil)

type MockTopicRepo struct {
	mock.Mock
}

func (m *MockTopicRepo) GetOrCreate(ctx context.Context, text string) (*Topic, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Topic), args.Error(1)
}

func (m *MockTopicRepo) IDsByTexts(ctx context.Context, texts []string) ([]int64, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

var _ TopicRepo = (*MockTopicRepo)(nil)

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Create(ctx context.Context, post *Post) (int64, error) {
	args := m.Called(ctx, post)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepo) GetMeta(ctx context.Context, id int64) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *MockPostRepo) Get(ctx context.Context, id, viewerID int64) (*PostView, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PostView), args.Error(1)
}

func (m *MockPostRepo) IncrementView(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) UpdateContent(ctx context.Context, id int64, title, content string) error {
	args := m.Called(ctx, id, title, content)
	return args.Error(0)
}

func (m *MockPostRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) List(ctx context.Context, f PostFilter) ([]PostSummary, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PostSummary), args.Error(1)
}

var _ PostRepo = (*MockPostRepo)(nil)

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, comment *Comment) (int64, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepo) GetMeta(ctx context.Context, id int64) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *MockCommentRepo) Get(ctx context.Context, id, viewerID int64) (*CommentView, error) {
	args := m.Called(ctx, id, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CommentView), args.Error(1)
}

func (m *MockCommentRepo) UpdateContent(ctx context.Context, id int64, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockCommentRepo) SoftDelete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID, viewerID int64, order string) ([]CommentView, error) {
	args := m.Called(ctx, postID, viewerID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CommentView), args.Error(1)
}

var _ CommentRepo = (*MockCommentRepo)(nil)

type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) LikePost(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepo) UnlikePost(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepo) LikeComment(ctx context.Context, userID, commentID int64) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepo) UnlikeComment(ctx context.Context, userID, commentID int64) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

var _ LikeRepo = (*MockLikeRepo)(nil)

type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) ReasonByText(ctx context.Context, reason string) (*ReportReason, error) {
	args := m.Called(ctx, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReportReason), args.Error(1)
}

func (m *MockReportRepo) Reasons(ctx context.Context) ([]ReportReason, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ReportReason), args.Error(1)
}

func (m *MockReportRepo) Create(ctx context.Context, report *Report) (bool, error) {
	args := m.Called(ctx, report)
	return args.Bool(0), args.Error(1)
}

var _ ReportRepo = (*MockReportRepo)(nil)
