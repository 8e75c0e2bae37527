package handler

import (
	"encoding/json"
	"net/http"

	"github.com/qanda-dev/qanda/internal/logger"
	"github.com/qanda-dev/qanda/internal/service"
)

type Handler struct {
	auth     service.AuthService
	question service.QuestionService
	answer   service.AnswerService
}

func New(auth service.AuthService, question service.QuestionService, answer service.AnswerService) *Handler {
	return &Handler{auth, question, answer}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
