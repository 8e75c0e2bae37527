// Package errors defines the closed set of failure kinds produced by the
// service. Every fallible operation terminates in either a success value or
// exactly one *Error; the recovery package is the only consumer that turns
// an *Error into a client-visible response.
package errors

import "fmt"

// Kind tags a failure. The set is closed: adding a kind requires extending
// the recovery mapping, which is enforced by the recovery tests.
type Kind int

const (
	// ParseFailure is a query or path parameter that failed to parse.
	ParseFailure Kind = iota
	// MissingParameters is an incomplete pagination parameter pair.
	MissingParameters
	// WrongPassword is a failed credential check with an existing account.
	WrongPassword
	// CredentialFailure is a fault in the password-verification primitive,
	// e.g. a malformed stored hash. Distinct from a merely wrong password.
	CredentialFailure
	// NotFound is a domain record that does not exist.
	NotFound
	// Database is any persistence failure. Code carries the driver error
	// code when one is available (e.g. "23505" for a unique violation).
	Database
	// ModerationUnreachable means no structured response was obtained from
	// the moderation API: connect/timeout failure or an undecodable body.
	ModerationUnreachable
	// ModerationClientFault is a 4xx answer from the moderation API.
	ModerationClientFault
	// ModerationServerFault is a 5xx answer from the moderation API.
	ModerationServerFault
)

// APIFault is the moderation API's own error envelope.
type APIFault struct {
	Status  int
	Message string
}

func (f APIFault) String() string {
	return fmt.Sprintf("Status: %d, Message: %s", f.Status, f.Message)
}

// Error is the single failure type flowing through the service. Only the
// fields a kind's message needs are set; the wrapped cause is for server-side
// logs and never rendered to clients.
type Error struct {
	Kind   Kind
	Detail string    // ParseFailure: what failed to parse
	Code   string    // Database: driver error code, may be empty
	Fault  *APIFault // moderation faults
	cause  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ParseFailure:
		return fmt.Sprintf("Cannot parse parameter: %s", e.Detail)
	case MissingParameters:
		return "Missing parameter"
	case WrongPassword:
		return "Wrong password"
	case CredentialFailure:
		return "Cannot verify password"
	case NotFound:
		return "Question not found"
	case Database:
		return "Query could not be executed"
	case ModerationUnreachable:
		return "Cannot execute moderation request"
	case ModerationClientFault:
		return fmt.Sprintf("External Client error: %s", e.Fault)
	case ModerationServerFault:
		return fmt.Sprintf("External Server error: %s", e.Fault)
	}
	return "Unknown error"
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

func Parse(detail string, cause error) *Error {
	return &Error{Kind: ParseFailure, Detail: detail, cause: cause}
}

func Missing() *Error {
	return &Error{Kind: MissingParameters}
}

func BadPassword() *Error {
	return &Error{Kind: WrongPassword}
}

func Credential(cause error) *Error {
	return &Error{Kind: CredentialFailure, cause: cause}
}

func NotFoundErr() *Error {
	return &Error{Kind: NotFound}
}

func DatabaseErr(code string, cause error) *Error {
	return &Error{Kind: Database, Code: code, cause: cause}
}

func Unreachable(cause error) *Error {
	return &Error{Kind: ModerationUnreachable, cause: cause}
}

func ClientFault(fault APIFault) *Error {
	return &Error{Kind: ModerationClientFault, Fault: &fault}
}

func ServerFault(fault APIFault) *Error {
	return &Error{Kind: ModerationServerFault, Fault: &fault}
}
