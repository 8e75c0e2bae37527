package service

import (
	"context"

	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/service/utils"
)

// to mock service in tests
type AnswerService interface {
	Add(ctx context.Context, answer domain.NewAnswer) (domain.Answer, error)
}

type Answer struct {
	storage   AnswerStorage
	moderator Moderator
}

type AnswerStorage interface {
	AddAnswer(answer domain.NewAnswer) (domain.Answer, error)
}

func NewAnswer(storage AnswerStorage, moderator Moderator) *Answer {
	return &Answer{storage, moderator}
}

func (a *Answer) Add(ctx context.Context, answer domain.NewAnswer) (domain.Answer, error) {
	content, err := a.moderator.Check(ctx, utils.SanitizeText(answer.Content))
	if err != nil {
		return domain.Answer{}, err
	}

	return a.storage.AddAnswer(domain.NewAnswer{Content: content, QuestionId: answer.QuestionId})
}
