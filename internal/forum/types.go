package forum

import "time"

// Report status values, stored as smallint.
const (
	ReportApplied  = 0
	ReportAccepted = 1
	ReportRejected = 2
)

// TargetType identifies what a report points at.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

// DeletedCommentContent replaces a comment body on soft-delete.
const DeletedCommentContent = "deleted"

type User struct {
	ID         int64
	ExternalID string
	Nickname   string
	MBTI       string
	Image      *string
	CreateAt   time.Time
	UpdateAt   time.Time
}

// Profile is the public slice of a user shown next to their content.
type Profile struct {
	Nickname string
	MBTI     string
	Image    *string
}

func (u *User) Profile() Profile {
	return Profile{Nickname: u.Nickname, MBTI: u.MBTI, Image: u.Image}
}

type Board struct {
	ID       int64
	Index    int16
	Category string
	Hidden   bool
}

// BoardTopic is one visible topic slot on a board.
type BoardTopic struct {
	Index int16
	Topic string
}

type BoardWithTopics struct {
	Board
	Topics []BoardTopic
}

// Topic is a reference-counted free-text hashtag.
type Topic struct {
	ID       int64
	Text     string
	RefCount int
}

type Post struct {
	ID        int64
	BoardID   int64
	TopicID   int64
	UserID    int64
	MBTI      string
	Title     string
	Content   string
	View      int
	Like      int
	Report    int
	Hidden    bool
	CreateAt  time.Time
	UpdateAt  time.Time
	DeleteAt  *time.Time
	ReserveAt *time.Time
}

// PostView is the full single-post projection: resolved board category and
// topic text, the author's public profile and the caller's like flag.
type PostView struct {
	ID       int64
	Category string
	Topic    string
	MBTI     string
	Title    string
	Content  string
	View     int
	Like     int
	Report   int
	Author   Profile
	IsLiked  bool
	CreateAt time.Time
	UpdateAt time.Time
}

// PostSummary is the list-view projection. No body, no comments.
type PostSummary struct {
	ID       int64
	Category string
	Topic    string
	MBTI     string
	Title    string
	View     int
	Like     int
	Author   Profile
	IsLiked  bool
	CreateAt time.Time
	UpdateAt time.Time
}

type Comment struct {
	ID       int64
	PostID   int64
	UserID   int64
	ParentID *int64
	Content  string
	Like     int
	Report   int
	Hidden   bool
	CreateAt time.Time
	UpdateAt time.Time
	DeleteAt *time.Time
}

type CommentView struct {
	ID       int64
	PostID   int64
	ParentID *int64
	Content  string
	Like     int
	Report   int
	Author   Profile
	IsLiked  bool
	CreateAt time.Time
	UpdateAt time.Time
}

type ReportReason struct {
	ID     int64
	Index  int16
	Reason string
}

type Report struct {
	ID            int64
	ComplainantID int64
	DefendantID   int64
	ReasonID      int64
	Status        int16
	TargetType    TargetType
	TargetNumber  int64
	Content       string
	CreateAt      time.Time
	UpdateAt      time.Time
}

// Penalty is an administrative sanction window. Nothing in the request paths
// consults it; it exists for out-of-band moderation tooling.
type Penalty struct {
	ID       int64
	UserID   int64
	StartAt  time.Time
	EndAt    time.Time
	Memo     string
	CreateAt time.Time
	UpdateAt time.Time
}

// PostOrder values accepted by the list endpoint.
const (
	OrderCreate = "create"
	OrderView   = "view"
	OrderLike   = "like"
)

// CommentOrder values accepted by the post-detail endpoint.
const (
	CommentOrderTime   = "time"
	CommentOrderRecent = "recent"
	CommentOrderLike   = "like"
)

// PostFilter drives the list query. Filters combine independently; zero
// values mean "no filter". ViewerID feeds the per-row IsLiked flag.
type PostFilter struct {
	MBTI     string
	TopicIDs []int64
	BoardID  *int64
	Order    string
	Limit    int
	Offset   int
	ViewerID int64
}
