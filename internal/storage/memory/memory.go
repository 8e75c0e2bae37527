// Package memory is an in-process store with the same interfaces and the
// same failure contract as the pg package. It backs tests and local runs
// without a database.
package memory

import (
	"sync"

	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/errors"
)

// uniqueViolation mirrors the Postgres code so recovery renders duplicate
// accounts identically for both backends.
const uniqueViolation = "23505"

// Storage guards all maps with one RWMutex: many concurrent readers, one
// writer. The lock never leaves this package.
type Storage struct {
	mu             sync.RWMutex
	questions      map[domain.QuestionId]domain.Question
	answers        map[domain.AnswerId]domain.Answer
	accounts       map[string]domain.Account // keyed by email
	nextQuestionId domain.QuestionId
	nextAnswerId   domain.AnswerId
	nextAccountId  domain.AccountId
}

func New() *Storage {
	return &Storage{
		questions:      map[domain.QuestionId]domain.Question{},
		answers:        map[domain.AnswerId]domain.Answer{},
		accounts:       map[string]domain.Account{},
		nextQuestionId: 1,
		nextAnswerId:   1,
		nextAccountId:  1,
	}
}

// --- accounts ---

func (s *Storage) SaveAccount(account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.Email]; exists {
		return errors.DatabaseErr(uniqueViolation, nil)
	}

	account.Id = s.nextAccountId
	s.nextAccountId++
	s.accounts[account.Email] = account
	return nil
}

func (s *Storage) Account(email string) (domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		// Same shape as a failed pg lookup: no dedicated not-found kind.
		return domain.Account{}, errors.DatabaseErr("", nil)
	}
	return account, nil
}

// --- questions ---

func (s *Storage) GetQuestions(limit, offset int) ([]domain.Question, error) {
	// Postgres rejects a negative OFFSET; fail the same way. A limit <= 0
	// means unbounded, matching the pg backend's LIMIT NULL.
	if offset < 0 {
		return nil, errors.DatabaseErr("", nil)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := make([]domain.Question, 0, len(s.questions))
	// Ids are assigned sequentially, so scanning by id keeps insertion order.
	for id := domain.QuestionId(1); id < s.nextQuestionId; id++ {
		if q, ok := s.questions[id]; ok {
			questions = append(questions, q)
		}
	}

	if offset >= len(questions) {
		return []domain.Question{}, nil
	}
	questions = questions[offset:]
	if limit > 0 && limit < len(questions) {
		questions = questions[:limit]
	}
	return questions, nil
}

func (s *Storage) AddQuestion(question domain.NewQuestion) (domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := domain.Question{
		Id:      s.nextQuestionId,
		Title:   question.Title,
		Content: question.Content,
		Tags:    question.Tags,
	}
	s.nextQuestionId++
	s.questions[q.Id] = q
	return q, nil
}

func (s *Storage) UpdateQuestion(id domain.QuestionId, question domain.NewQuestion) (domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return domain.Question{}, errors.NotFoundErr()
	}

	q := domain.Question{Id: id, Title: question.Title, Content: question.Content, Tags: question.Tags}
	s.questions[id] = q
	return q, nil
}

func (s *Storage) DeleteQuestion(id domain.QuestionId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return errors.NotFoundErr()
	}
	delete(s.questions, id)
	return nil
}

// --- answers ---

func (s *Storage) AddAnswer(answer domain.NewAnswer) (domain.Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[answer.QuestionId]; !ok {
		// Matches the foreign-key failure of the pg backend.
		return domain.Answer{}, errors.DatabaseErr("", nil)
	}

	a := domain.Answer{Id: s.nextAnswerId, Content: answer.Content, QuestionId: answer.QuestionId}
	s.nextAnswerId++
	s.answers[a.Id] = a
	return a, nil
}
