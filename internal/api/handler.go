package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
	"github.com/mindpairing/mindpairing-backend/internal/metrics"
)

// Service interfaces consumed by the handlers. Declared here so handler
// tests can substitute mocks without a database.

type BoardService interface {
	List(ctx context.Context) ([]forum.BoardWithTopics, error)
}

type PostService interface {
	Create(ctx context.Context, authorID int64, in forum.CreatePostInput) (*forum.PostDetail, error)
	Get(ctx context.Context, viewerID, id int64, commentOrder string) (*forum.PostDetail, error)
	Update(ctx context.Context, userID, id int64, title, content string) (*forum.PostView, error)
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, viewerID int64, in forum.ListPostsInput) ([]forum.PostSummary, error)
	Like(ctx context.Context, userID, id int64) (*forum.PostView, error)
	Unlike(ctx context.Context, userID, id int64) error
}

type CommentService interface {
	Create(ctx context.Context, userID int64, in forum.CreateCommentInput) (*forum.CommentView, error)
	Update(ctx context.Context, userID, id int64, content string) (*forum.CommentView, error)
	Delete(ctx context.Context, userID, id int64) (*forum.CommentView, error)
	Like(ctx context.Context, userID, id int64) (*forum.CommentView, error)
	Unlike(ctx context.Context, userID, id int64) error
}

type ReportService interface {
	File(ctx context.Context, complainantID int64, in forum.ReportInput) error
}

// Pinger is the readiness-probe slice of the postgres pool and the cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	boards   BoardService
	posts    PostService
	comments CommentService
	reports  ReportService

	db      Pinger
	cache   Pinger
	metrics *metrics.Metrics
	logger  *zap.SugaredLogger
}

func NewHandler(
	boards BoardService,
	posts PostService,
	comments CommentService,
	reports ReportService,
	db Pinger,
	cache Pinger,
	m *metrics.Metrics,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		boards:   boards,
		posts:    posts,
		comments: comments,
		reports:  reports,
		db:       db,
		cache:    cache,
		metrics:  m,
		logger:   logger,
	}
}

func (h *Handler) recordWrite(ctx context.Context, kind string) {
	if h.metrics != nil {
		h.metrics.RecordContentWrite(ctx, kind)
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Errorw("Readiness check failed", "component", "postgres", "error", err)
			http.Error(w, "postgres unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			h.logger.Errorw("Readiness check failed", "component", "redis", "error", err)
			http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) writeData(w http.ResponseWriter, status int, data any) {
	h.writeJSON(w, status, dataResponse{Data: data})
}

func (h *Handler) writeMsg(w http.ResponseWriter, status int, msg string) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}
	h.writeJSON(w, status, msgResponse{Msg: msg})
}

// writeDomainError maps service error kinds to HTTP statuses. Every handler
// funnels its service errors through here so each kind has exactly one status.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *forum.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeMsg(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, forum.ErrNotFound):
		h.writeMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, forum.ErrSelfReport):
		h.writeMsg(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, forum.ErrNotOwner):
		h.writeMsg(w, http.StatusForbidden, err.Error())
	case errors.Is(err, forum.ErrAlreadyLiked):
		h.writeMsg(w, http.StatusOK, err.Error())
	case errors.Is(err, forum.ErrAlreadyReported):
		h.writeMsg(w, http.StatusAccepted, err.Error())
	case errors.Is(err, forum.ErrHidden),
		errors.Is(err, forum.ErrNotLiked),
		errors.Is(err, forum.ErrAlreadyDeleted):
		w.WriteHeader(http.StatusNoContent)
	default:
		h.logger.Errorw("Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		h.writeMsg(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.writeMsg(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}
