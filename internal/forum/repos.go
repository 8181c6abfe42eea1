package forum

import "context"

// Repository interfaces are declared here and implemented by internal/store.
// Services receive them by injection; no package-level state is shared
// between requests.

type BoardRepo interface {
	// List returns visible boards with their visible topics, ordered by index.
	List(ctx context.Context) ([]BoardWithTopics, error)
	// GetByCategory resolves a visible board by its category label.
	// Returns ErrNotFound when the board does not exist or is hidden.
	GetByCategory(ctx context.Context, category string) (*Board, error)
}

type TopicRepo interface {
	// GetOrCreate upserts a topic by text. A new topic starts with
	// ref_count 1; an existing one has its ref_count incremented.
	GetOrCreate(ctx context.Context, text string) (*Topic, error)
	// IDsByTexts resolves topic texts to ids, skipping unknown texts.
	IDsByTexts(ctx context.Context, texts []string) ([]int64, error)
}

type PostRepo interface {
	Create(ctx context.Context, post *Post) (int64, error)
	// GetMeta returns the raw row for precondition checks (ownership,
	// hidden flag). ErrNotFound when missing.
	GetMeta(ctx context.Context, id int64) (*Post, error)
	// Get returns the full projection for viewerID. ErrNotFound when missing.
	Get(ctx context.Context, id, viewerID int64) (*PostView, error)
	// IncrementView bumps the view counter atomically at the storage layer.
	IncrementView(ctx context.Context, id int64) error
	// UpdateContent replaces title and content, deletes every like
	// association for the post and zeroes its like counter, all in one
	// transaction.
	UpdateContent(ctx context.Context, id int64, title, content string) error
	// Delete removes the row. Comments and like associations go with it via
	// the schema's ON DELETE CASCADE foreign keys.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f PostFilter) ([]PostSummary, error)
}

type CommentRepo interface {
	Create(ctx context.Context, comment *Comment) (int64, error)
	GetMeta(ctx context.Context, id int64) (*Comment, error)
	Get(ctx context.Context, id, viewerID int64) (*CommentView, error)
	UpdateContent(ctx context.Context, id int64, content string) error
	// SoftDelete stamps delete_at and overwrites the content with the
	// sentinel. Returns false when the comment was already soft-deleted.
	SoftDelete(ctx context.Context, id int64) (bool, error)
	// ListByPost returns the visible (hidden=false) comments of a post.
	ListByPost(ctx context.Context, postID, viewerID int64, order string) ([]CommentView, error)
}

type LikeRepo interface {
	// LikePost inserts the (user, post) association if absent and, only
	// when inserted, increments the post's like counter atomically.
	// created=false means the association already existed.
	LikePost(ctx context.Context, userID, postID int64) (created bool, err error)
	// UnlikePost deletes the association if present and, only when a row
	// was deleted, decrements the counter (never below zero).
	UnlikePost(ctx context.Context, userID, postID int64) (removed bool, err error)
	LikeComment(ctx context.Context, userID, commentID int64) (created bool, err error)
	UnlikeComment(ctx context.Context, userID, commentID int64) (removed bool, err error)
}

type ReportRepo interface {
	ReasonByText(ctx context.Context, reason string) (*ReportReason, error)
	Reasons(ctx context.Context) ([]ReportReason, error)
	// Create inserts the report unless an identical
	// (complainant, target, reason, content) tuple already exists.
	Create(ctx context.Context, report *Report) (created bool, err error)
}

type PenaltyRepo interface {
	Create(ctx context.Context, penalty *Penalty) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Penalty, error)
}

type UserRepo interface {
	Get(ctx context.Context, id int64) (*User, error)
	// GetOrCreateByExternalID maps an identity-provider id to the internal
	// user row, creating it on first sight.
	GetOrCreateByExternalID(ctx context.Context, externalID string, profile Profile) (*User, error)
}
