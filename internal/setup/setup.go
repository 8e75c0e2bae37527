package setup

import (
	"fmt"

	"github.com/qanda-dev/qanda/internal/config"
	"github.com/qanda-dev/qanda/internal/handler"
	"github.com/qanda-dev/qanda/internal/moderation"
	"github.com/qanda-dev/qanda/internal/service"
	"github.com/qanda-dev/qanda/internal/storage/memory"
	"github.com/qanda-dev/qanda/internal/storage/pg"
	"github.com/qanda-dev/qanda/internal/token"
)

// Dependencies holds all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Handler *handler.Handler
	Cleanup func() error
}

type storage interface {
	service.AccountStorage
	service.QuestionStorage
	service.AnswerStorage
}

// SetupDependencies initializes everything the router needs. A storage
// connection failure here aborts startup.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	var store storage
	cleanup := func() error { return nil }

	switch cfg.Public.Store {
	case "pg":
		pgStore, err := pg.New(cfg.Public.Pg)
		if err != nil {
			return nil, fmt.Errorf("setup: connecting to db: %w", err)
		}
		store = pgStore
		cleanup = pgStore.Cleanup
	case "memory":
		store = memory.New()
	default:
		return nil, fmt.Errorf("setup: unknown store %q", cfg.Public.Store)
	}

	moderator := moderation.New(cfg.Public.ModerationURL, cfg.BadWordsKey(), cfg.ModerationTimeout())
	issuer := token.New(cfg.TokenSecret(), cfg.TokenTTL())

	auth := service.NewAuth(store, issuer)
	question := service.NewQuestion(store, moderator)
	answer := service.NewAnswer(store, moderator)

	h := handler.New(auth, question, answer)

	return &Dependencies{
		Config:  cfg,
		Handler: h,
		Cleanup: cleanup,
	}, nil
}
