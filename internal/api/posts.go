package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !h.decode(w, r, &req) {
		return
	}

	user := userFrom(r.Context())
	detail, err := h.posts.Create(r.Context(), user.ID, forum.CreatePostInput{
		Category: req.Category,
		Topic:    req.Topic,
		MBTI:     req.MBTI,
		Title:    req.Title,
		Content:  req.Content,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.recordWrite(r.Context(), "post")
	h.writeJSON(w, http.StatusCreated, postDetailResponse{
		Data:     postDTO(detail.Post),
		Comments: commentDTOs(detail.Comments),
	})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := forum.ListPostsInput{
		Category: q.Get("category"),
		Topic:    q.Get("topic"),
		MBTI:     q.Get("mbti"),
		Order:    q.Get("order"),
	}
	if v := q.Get("pageSize"); v != "" {
		in.PageSize, _ = strconv.Atoi(v)
	}
	if v := q.Get("pageNum"); v != "" {
		in.PageNum, _ = strconv.Atoi(v)
	}

	user := userFrom(r.Context())
	posts, err := h.posts.List(r.Context(), user.ID, in)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	dtos := make([]PostSummaryDTO, len(posts))
	for i, p := range posts {
		dtos[i] = postSummaryDTO(p)
	}
	h.writeData(w, http.StatusOK, dtos)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "postID")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	detail, err := h.posts.Get(r.Context(), user.ID, id, r.URL.Query().Get("ordering"))
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, postDetailResponse{
		Data:     postDTO(detail.Post),
		Comments: commentDTOs(detail.Comments),
	})
}

func (h *Handler) EditPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "postID")
	if !ok {
		return
	}
	var req editPostRequest
	if !h.decode(w, r, &req) {
		return
	}

	user := userFrom(r.Context())
	view, err := h.posts.Update(r.Context(), user.ID, id, req.Title, req.Content)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, postDTO(*view))
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "postID")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	if err := h.posts.Delete(r.Context(), user.ID, id); err != nil {
		// A missing post and a completed delete answer the same way.
		if err == forum.ErrNotFound {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) LikePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "postID")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	view, err := h.posts.Like(r.Context(), user.ID, id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, postDTO(*view))
}

func (h *Handler) UnlikePost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "postID")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	if err := h.posts.Unlike(r.Context(), user.ID, id); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeMsg(w, http.StatusOK, "unliked")
}

// pathID parses a numeric chi path parameter, answering 400 on garbage.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		h.writeMsg(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
