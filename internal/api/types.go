package api

import (
	"time"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

// Responses use a thin envelope: successes carry "data", errors carry "msg".
// The single-post response additionally carries its comments at the top level.

type dataResponse struct {
	Data any `json:"data"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type postDetailResponse struct {
	Data     PostDTO      `json:"data"`
	Comments []CommentDTO `json:"comments"`
}

type AuthorDTO struct {
	Nickname string  `json:"nickname"`
	MBTI     string  `json:"mbti"`
	Image    *string `json:"image"`
}

type BoardTopicDTO struct {
	Index int16  `json:"index"`
	Topic string `json:"topic"`
}

type BoardDTO struct {
	Index    int16           `json:"index"`
	Category string          `json:"category"`
	Topics   []BoardTopicDTO `json:"topics"`
}

type PostDTO struct {
	ID       int64     `json:"id"`
	Category string    `json:"category"`
	Topic    string    `json:"topic"`
	MBTI     string    `json:"mbti"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	View     int       `json:"view"`
	Like     int       `json:"like"`
	Author   AuthorDTO `json:"author"`
	IsLiked  bool      `json:"is_liked"`
	CreateAt time.Time `json:"create_at"`
	UpdateAt time.Time `json:"update_at"`
}

type PostSummaryDTO struct {
	ID       int64     `json:"id"`
	Category string    `json:"category"`
	Topic    string    `json:"topic"`
	MBTI     string    `json:"mbti"`
	Title    string    `json:"title"`
	View     int       `json:"view"`
	Like     int       `json:"like"`
	Author   AuthorDTO `json:"author"`
	IsLiked  bool      `json:"is_liked"`
	CreateAt time.Time `json:"create_at"`
	UpdateAt time.Time `json:"update_at"`
}

type CommentDTO struct {
	ID       int64     `json:"id"`
	PostID   int64     `json:"post_id"`
	ParentID *int64    `json:"parent_comment_id"`
	Content  string    `json:"content"`
	Like     int       `json:"like"`
	Author   AuthorDTO `json:"author"`
	IsLiked  bool      `json:"is_liked"`
	CreateAt time.Time `json:"create_at"`
	UpdateAt time.Time `json:"update_at"`
}

type createPostRequest struct {
	Category string `json:"category"`
	Topic    string `json:"topic"`
	MBTI     string `json:"mbti"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

type editPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createCommentRequest struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_comment_id"`
}

type editCommentRequest struct {
	Content string `json:"content"`
}

type reportRequest struct {
	Reason  string `json:"reason"`
	Content string `json:"content"`
}

func authorDTO(p forum.Profile) AuthorDTO {
	return AuthorDTO{Nickname: p.Nickname, MBTI: p.MBTI, Image: p.Image}
}

func boardDTO(b forum.BoardWithTopics) BoardDTO {
	topics := make([]BoardTopicDTO, len(b.Topics))
	for i, t := range b.Topics {
		topics[i] = BoardTopicDTO{Index: t.Index, Topic: t.Topic}
	}
	return BoardDTO{Index: b.Index, Category: b.Category, Topics: topics}
}

func postDTO(v forum.PostView) PostDTO {
	return PostDTO{
		ID:       v.ID,
		Category: v.Category,
		Topic:    v.Topic,
		MBTI:     v.MBTI,
		Title:    v.Title,
		Content:  v.Content,
		View:     v.View,
		Like:     v.Like,
		Author:   authorDTO(v.Author),
		IsLiked:  v.IsLiked,
		CreateAt: v.CreateAt,
		UpdateAt: v.UpdateAt,
	}
}

func postSummaryDTO(s forum.PostSummary) PostSummaryDTO {
	return PostSummaryDTO{
		ID:       s.ID,
		Category: s.Category,
		Topic:    s.Topic,
		MBTI:     s.MBTI,
		Title:    s.Title,
		View:     s.View,
		Like:     s.Like,
		Author:   authorDTO(s.Author),
		IsLiked:  s.IsLiked,
		CreateAt: s.CreateAt,
		UpdateAt: s.UpdateAt,
	}
}

func commentDTO(v forum.CommentView) CommentDTO {
	return CommentDTO{
		ID:       v.ID,
		PostID:   v.PostID,
		ParentID: v.ParentID,
		Content:  v.Content,
		Like:     v.Like,
		Author:   authorDTO(v.Author),
		IsLiked:  v.IsLiked,
		CreateAt: v.CreateAt,
		UpdateAt: v.UpdateAt,
	}
}

func commentDTOs(views []forum.CommentView) []CommentDTO {
	out := make([]CommentDTO, len(views))
	for i, v := range views {
		out[i] = commentDTO(v)
	}
	return out
}
