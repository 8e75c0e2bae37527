package handler

import (
	"net/http"

	"github.com/qanda-dev/qanda/internal/api"
	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/recovery"
)

func (h *Handler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	var body api.NewAnswerRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		recovery.Write(w, err)
		return
	}

	_, err := h.answer.Add(r.Context(), domain.NewAnswer{
		Content:    body.Content,
		QuestionId: body.QuestionId,
	})
	if err != nil {
		recovery.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Answer added"))
}
