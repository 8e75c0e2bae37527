// Package recovery is the single point where a failure surfacing from
// request handling becomes a client-visible status code and body. Handlers
// forward errors here untouched; nothing else in the service writes error
// responses.
package recovery

import (
	"fmt"
	"net/http"

	"github.com/qanda-dev/qanda/internal/errors"
	"github.com/qanda-dev/qanda/internal/logger"
)

// Outcome is the terminal, user-visible artifact of a failed request.
type Outcome struct {
	Status int
	Body   string
}

// CorsForbidden is raised by the CORS middleware for a disallowed
// cross-origin request.
type CorsForbidden struct {
	Reason string
}

func (e *CorsForbidden) Error() string {
	return fmt.Sprintf("CORS request forbidden: %s", e.Reason)
}

// MalformedBody is raised when a request body fails to decode or is missing
// required fields.
type MalformedBody struct {
	Err error
}

func (e *MalformedBody) Error() string {
	return fmt.Sprintf("Request body deserialize error: %v", e.Err)
}

// NoRoute marks a request no handler matched.
type NoRoute struct{}

func (NoRoute) Error() string { return "Route not found" }

// PgUniqueViolation is the Postgres error code for a unique constraint
// violation. The only place a driver error code is inspected.
const PgUniqueViolation = "23505"

// Recover maps a failure to its outcome. It is total: every taxonomy kind
// and rejection type has exactly one mapping, and anything unrecognized
// collapses to a generic 500 without leaking internals.
func Recover(err error) Outcome {
	switch e := err.(type) {
	case *errors.Error:
		return recoverKind(e)
	case *CorsForbidden:
		return Outcome{http.StatusForbidden, e.Error()}
	case *MalformedBody:
		return Outcome{http.StatusUnprocessableEntity, e.Error()}
	case NoRoute:
		return Outcome{http.StatusNotFound, "Route not found"}
	}
	return Outcome{http.StatusInternalServerError, "Internal Server Error"}
}

func recoverKind(e *errors.Error) Outcome {
	switch e.Kind {
	case errors.ParseFailure, errors.MissingParameters:
		return Outcome{http.StatusUnprocessableEntity, e.Error()}
	case errors.WrongPassword:
		return Outcome{http.StatusUnauthorized, "Wrong E-Mail/Password combination"}
	case errors.CredentialFailure:
		return Outcome{http.StatusUnprocessableEntity, "Cannot verify password"}
	case errors.NotFound:
		return Outcome{http.StatusUnprocessableEntity, "Question not found"}
	case errors.Database:
		if e.Code == PgUniqueViolation {
			return Outcome{http.StatusUnprocessableEntity, "Account already exists"}
		}
		return Outcome{http.StatusUnprocessableEntity, "Cannot update data"}
	case errors.ModerationUnreachable:
		return Outcome{http.StatusInternalServerError, "Internal Server Error"}
	case errors.ModerationClientFault, errors.ModerationServerFault:
		return Outcome{http.StatusUnprocessableEntity, e.Error()}
	}
	return Outcome{http.StatusInternalServerError, "Internal Server Error"}
}

// Write logs the failure and writes its outcome as plain text. User-input
// failures log at warn; dependency faults log at error with the wrapped
// cause, which stays server-side.
func Write(w http.ResponseWriter, err error) {
	out := Recover(err)
	if dependencyFault(err) {
		logger.Log.Error("request failed", "error", err, "cause", unwrapped(err), "status", out.Status)
	} else {
		logger.Log.Warn("request rejected", "error", err, "status", out.Status)
	}
	http.Error(w, out.Body, out.Status)
}

func dependencyFault(err error) bool {
	e, ok := err.(*errors.Error)
	if !ok {
		// Unrecognized errors get the generic 500 and full logging.
		_, cors := err.(*CorsForbidden)
		_, body := err.(*MalformedBody)
		_, route := err.(NoRoute)
		return !cors && !body && !route
	}
	switch e.Kind {
	case errors.Database, errors.CredentialFailure, errors.ModerationUnreachable, errors.ModerationServerFault:
		return true
	}
	return false
}

func unwrapped(err error) string {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		if cause := u.Unwrap(); cause != nil {
			return cause.Error()
		}
	}
	return ""
}
