package api

import (
	"net/http"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

// Comment routes share the /v1/comments/{id} shape: on create the id is the
// post being commented on, everywhere else it is the comment itself.

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	postID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req createCommentRequest
	if !h.decode(w, r, &req) {
		return
	}

	user := userFrom(r.Context())
	view, err := h.comments.Create(r.Context(), user.ID, forum.CreateCommentInput{
		PostID:   postID,
		Content:  req.Content,
		ParentID: req.ParentID,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.recordWrite(r.Context(), "comment")
	h.writeData(w, http.StatusOK, commentDTO(*view))
}

func (h *Handler) EditComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req editCommentRequest
	if !h.decode(w, r, &req) {
		return
	}

	user := userFrom(r.Context())
	view, err := h.comments.Update(r.Context(), user.ID, id, req.Content)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, commentDTO(*view))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	view, err := h.comments.Delete(r.Context(), user.ID, id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeData(w, http.StatusOK, commentDTO(*view))
}

func (h *Handler) LikeComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	view, err := h.comments.Like(r.Context(), user.ID, id)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeData(w, http.StatusCreated, commentDTO(*view))
}

func (h *Handler) UnlikeComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	user := userFrom(r.Context())
	if err := h.comments.Unlike(r.Context(), user.ID, id); err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeMsg(w, http.StatusOK, "unliked")
}
