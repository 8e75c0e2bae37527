package service

import (
	"context"

	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/service/utils"
)

// to mock service in tests
type QuestionService interface {
	List(p domain.Pagination) ([]domain.Question, error)
	Add(ctx context.Context, question domain.NewQuestion) (domain.Question, error)
	Update(ctx context.Context, id domain.QuestionId, question domain.NewQuestion) (domain.Question, error)
	Delete(id domain.QuestionId) error
}

type Question struct {
	storage   QuestionStorage
	moderator Moderator
}

type QuestionStorage interface {
	GetQuestions(limit, offset int) ([]domain.Question, error)
	AddQuestion(question domain.NewQuestion) (domain.Question, error)
	UpdateQuestion(id domain.QuestionId, question domain.NewQuestion) (domain.Question, error)
	DeleteQuestion(id domain.QuestionId) error
}

// Moderator rewrites free text, censoring disallowed words.
type Moderator interface {
	Check(ctx context.Context, content string) (string, error)
}

func NewQuestion(storage QuestionStorage, moderator Moderator) *Question {
	return &Question{storage, moderator}
}

func (q *Question) List(p domain.Pagination) ([]domain.Question, error) {
	return q.storage.GetQuestions(p.Limit, p.Offset)
}

// Add runs title and content through moderation before persisting. A
// moderation failure fails the request; there is no retry and no fallback
// to the uncensored text.
func (q *Question) Add(ctx context.Context, question domain.NewQuestion) (domain.Question, error) {
	moderated, err := q.moderate(ctx, question)
	if err != nil {
		return domain.Question{}, err
	}

	return q.storage.AddQuestion(moderated)
}

func (q *Question) Update(ctx context.Context, id domain.QuestionId, question domain.NewQuestion) (domain.Question, error) {
	moderated, err := q.moderate(ctx, question)
	if err != nil {
		return domain.Question{}, err
	}

	return q.storage.UpdateQuestion(id, moderated)
}

func (q *Question) Delete(id domain.QuestionId) error {
	return q.storage.DeleteQuestion(id)
}

func (q *Question) moderate(ctx context.Context, question domain.NewQuestion) (domain.NewQuestion, error) {
	title, err := q.moderator.Check(ctx, utils.SanitizeText(question.Title))
	if err != nil {
		return domain.NewQuestion{}, err
	}
	content, err := q.moderator.Check(ctx, utils.SanitizeText(question.Content))
	if err != nil {
		return domain.NewQuestion{}, err
	}

	return domain.NewQuestion{Title: title, Content: content, Tags: question.Tags}, nil
}
