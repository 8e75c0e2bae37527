package pg

import (
	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/logger"
)

func (s *Storage) AddAnswer(answer domain.NewAnswer) (domain.Answer, error) {
	var a domain.Answer
	err := s.db.QueryRow(
		"INSERT INTO answers (content, question_id) VALUES ($1, $2) RETURNING id, content, question_id",
		answer.Content, answer.QuestionId).
		Scan(&a.Id, &a.Content, &a.QuestionId)
	if err != nil {
		logger.Log.Error("failed to insert answer", "error", err)
		return domain.Answer{}, queryError(err)
	}
	return a, nil
}
