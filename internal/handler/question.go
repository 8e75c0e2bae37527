package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/qanda-dev/qanda/internal/api"
	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/recovery"
)

func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	pagination, err := domain.ExtractPagination(r.URL.Query())
	if err != nil {
		recovery.Write(w, err)
		return
	}

	questions, err := h.question.List(pagination)
	if err != nil {
		recovery.Write(w, err)
		return
	}
	if questions == nil {
		questions = []domain.Question{}
	}

	writeJSON(w, questions)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	var body api.NewQuestionRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		recovery.Write(w, err)
		return
	}

	_, err := h.question.Add(r.Context(), domain.NewQuestion{
		Title:   body.Title,
		Content: body.Content,
		Tags:    body.Tags,
	})
	if err != nil {
		recovery.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Question added"))
}

func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(mux.Vars(r)["id"])
	if err != nil {
		recovery.Write(w, err)
		return
	}

	var body api.NewQuestionRequest
	if err := decodeValidate(r.Body, &body); err != nil {
		recovery.Write(w, err)
		return
	}

	question, err := h.question.Update(r.Context(), id, domain.NewQuestion{
		Title:   body.Title,
		Content: body.Content,
		Tags:    body.Tags,
	})
	if err != nil {
		recovery.Write(w, err)
		return
	}

	writeJSON(w, question)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(mux.Vars(r)["id"])
	if err != nil {
		recovery.Write(w, err)
		return
	}

	if err := h.question.Delete(id); err != nil {
		recovery.Write(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Question %d deleted", id)
}
