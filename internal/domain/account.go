package domain

type AccountId = int64

// Account as persisted. PasswordHash is always the encoded salted hash;
// the clear-text password never leaves the credential service call frame.
type Account struct {
	Id           AccountId
	Email        string
	PasswordHash string
}

// Credentials is a clear-text email/password pair from a request body.
type Credentials struct {
	Email    string
	Password string
}
