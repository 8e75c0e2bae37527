package service

import (
	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/errors"
	"github.com/qanda-dev/qanda/internal/logger"
	"github.com/qanda-dev/qanda/internal/password"
)

// to mock service in tests
type AuthService interface {
	Register(creds domain.Credentials) error
	Login(creds domain.Credentials) (string, error)
}

type Auth struct {
	storage AccountStorage
	tokens  TokenIssuer
}

type AccountStorage interface {
	SaveAccount(account domain.Account) error
	Account(email string) (domain.Account, error)
}

type TokenIssuer interface {
	Issue(accountId domain.AccountId) (string, error)
}

func NewAuth(storage AccountStorage, tokens TokenIssuer) *Auth {
	return &Auth{storage, tokens}
}

// Register hashes the clear-text password and stores the account. A
// duplicate email surfaces from storage as a database failure carrying the
// unique-violation code; no inspection happens here.
func (a *Auth) Register(creds domain.Credentials) error {
	account := domain.Account{
		Email:        creds.Email,
		PasswordHash: password.Hash(creds.Password),
	}

	return a.storage.SaveAccount(account)
}

// Login looks the account up by email, verifies the password and issues a
// token. A lookup failure stays the generic database failure, including the
// unknown-email case: login does not reveal whether an account exists.
func (a *Auth) Login(creds domain.Credentials) (string, error) {
	account, err := a.storage.Account(creds.Email)
	if err != nil {
		return "", err
	}

	verified, err := password.Verify(account.PasswordHash, creds.Password)
	if err != nil {
		logger.Log.Error("password verification fault", "error", err)
		return "", errors.Credential(err)
	}
	if !verified {
		return "", errors.BadPassword()
	}

	token, err := a.tokens.Issue(account.Id)
	if err != nil {
		logger.Log.Error("failed to sign token", "account_id", account.Id, "error", err)
		return "", err
	}

	return token, nil
}
