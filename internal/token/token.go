// Package token issues the bearer tokens returned by login.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qanda-dev/qanda/internal/domain"
)

// Issuer signs self-contained account tokens with a process-wide secret.
// It only issues; presented tokens are not verified anywhere in this
// service.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue builds a token valid from now until now+ttl, carrying only the
// account id. It consults no storage; a signing failure is a programmer or
// environment fault and is returned raw, never as a domain failure.
func (i *Issuer) Issue(accountId domain.AccountId) (string, error) {
	now := i.now()

	claims := jwt.MapClaims{
		"account_id": accountId,
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"exp":        now.Add(i.ttl).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}
