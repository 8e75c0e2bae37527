package pg

import (
	"github.com/qanda-dev/qanda/internal/domain"
	"github.com/qanda-dev/qanda/internal/logger"
)

func (s *Storage) SaveAccount(account domain.Account) error {
	_, err := s.db.Exec("INSERT INTO accounts (email, password) VALUES ($1, $2)",
		account.Email, account.PasswordHash)
	if err != nil {
		logger.Log.Error("failed to insert account", "error", err)
		return queryError(err)
	}
	return nil
}

// Account fetches by email. A missing account is deliberately not a
// dedicated failure: login treats every lookup problem alike.
func (s *Storage) Account(email string) (domain.Account, error) {
	var account domain.Account
	err := s.db.QueryRow("SELECT id, email, password FROM accounts WHERE email = $1", email).
		Scan(&account.Id, &account.Email, &account.PasswordHash)
	if err != nil {
		logger.Log.Error("failed to query account", "error", err)
		return domain.Account{}, queryError(err)
	}
	return account, nil
}
