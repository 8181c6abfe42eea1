package api

import (
	"net/http"

	"github.com/mindpairing/mindpairing-backend/internal/forum"
)

func (h *Handler) ReportPost(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "postID")
	if !ok {
		return
	}
	h.report(w, r, forum.TargetPost, id)
}

func (h *Handler) ReportComment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	h.report(w, r, forum.TargetComment, id)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, target forum.TargetType, targetID int64) {
	var req reportRequest
	if !h.decode(w, r, &req) {
		return
	}

	user := userFrom(r.Context())
	err := h.reports.File(r.Context(), user.ID, forum.ReportInput{
		TargetType:   target,
		TargetNumber: targetID,
		Reason:       req.Reason,
		Content:      req.Content,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	if h.metrics != nil {
		h.metrics.RecordReportFiled(r.Context(), string(target))
	}
	h.writeMsg(w, http.StatusCreated, "reported")
}
