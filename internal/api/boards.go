package api

import "net/http"

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.boards.List(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	dtos := make([]BoardDTO, len(boards))
	for i, b := range boards {
		dtos[i] = boardDTO(b)
	}
	h.writeData(w, http.StatusOK, dtos)
}
