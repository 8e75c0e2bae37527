package pg

import (
	"database/sql"
	stderrors "errors"

	"github.com/lib/pq"

	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/errors"
	"github.com/qanda-dev/qanda/internal/logger"
)

func (s *Storage) GetQuestions(limit, offset int) ([]domain.Question, error) {
	// limit 0 means unbounded; LIMIT NULL disables the clause.
	var limitArg sql.NullInt64
	if limit > 0 {
		limitArg = sql.NullInt64{Int64: int64(limit), Valid: true}
	}

	rows, err := s.db.Query(
		"SELECT id, title, content, tags FROM questions ORDER BY id LIMIT $1 OFFSET $2",
		limitArg, offset)
	if err != nil {
		logger.Log.Error("failed to query questions", "error", err)
		return nil, queryError(err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.Id, &q.Title, &q.Content, pq.Array(&q.Tags)); err != nil {
			logger.Log.Error("failed to scan question", "error", err)
			return nil, queryError(err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError(err)
	}
	return questions, nil
}

func (s *Storage) AddQuestion(question domain.NewQuestion) (domain.Question, error) {
	var q domain.Question
	err := s.db.QueryRow(
		"INSERT INTO questions (title, content, tags) VALUES ($1, $2, $3) RETURNING id, title, content, tags",
		question.Title, question.Content, pq.Array(question.Tags)).
		Scan(&q.Id, &q.Title, &q.Content, pq.Array(&q.Tags))
	if err != nil {
		logger.Log.Error("failed to insert question", "error", err)
		return domain.Question{}, queryError(err)
	}
	return q, nil
}

func (s *Storage) UpdateQuestion(id domain.QuestionId, question domain.NewQuestion) (domain.Question, error) {
	var q domain.Question
	err := s.db.QueryRow(
		"UPDATE questions SET title = $1, content = $2, tags = $3 WHERE id = $4 RETURNING id, title, content, tags",
		question.Title, question.Content, pq.Array(question.Tags), id).
		Scan(&q.Id, &q.Title, &q.Content, pq.Array(&q.Tags))
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return domain.Question{}, errors.NotFoundErr()
		}
		logger.Log.Error("failed to update question", "error", err)
		return domain.Question{}, queryError(err)
	}
	return q, nil
}

func (s *Storage) DeleteQuestion(id domain.QuestionId) error {
	result, err := s.db.Exec("DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		logger.Log.Error("failed to delete question", "error", err)
		return queryError(err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return queryError(err)
	}
	if deleted == 0 {
		return errors.NotFoundErr()
	}
	return nil
}
