package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"parse failure", Parse(`strconv.Atoi: parsing "abc": invalid syntax`, nil), `Cannot parse parameter: strconv.Atoi: parsing "abc": invalid syntax`},
		{"missing parameters", Missing(), "Missing parameter"},
		{"wrong password", BadPassword(), "Wrong password"},
		{"credential failure", Credential(nil), "Cannot verify password"},
		{"not found", NotFoundErr(), "Question not found"},
		{"database", DatabaseErr("23505", nil), "Query could not be executed"},
		{"moderation unreachable", Unreachable(nil), "Cannot execute moderation request"},
		{"client fault", ClientFault(APIFault{Status: 400, Message: "apikey invalid"}), "External Client error: Status: 400, Message: apikey invalid"},
		{"server fault", ServerFault(APIFault{Status: 503, Message: "overloaded"}), "External Server error: Status: 503, Message: overloaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDatabaseErrorNeverLeaksCause(t *testing.T) {
	cause := stderrors.New(`pq: duplicate key value violates unique constraint "accounts_email_key"`)
	err := DatabaseErr("23505", cause)

	assert.NotContains(t, err.Error(), "accounts_email_key")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(BadPassword(), WrongPassword))
	assert.False(t, Is(BadPassword(), Database))
	assert.False(t, Is(stderrors.New("plain"), WrongPassword))
	assert.False(t, Is(nil, WrongPassword))
}
