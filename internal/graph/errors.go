package graph

import (
	"errors"
	"log/slog"

	"github.com/Arthur-Gab/graphql-task-api/internal/repository"
	"github.com/Arthur-Gab/graphql-task-api/internal/service"
	"github.com/Arthur-Gab/graphql-task-api/internal/validation"
)

// Error is a GraphQL error with an extensions code. It satisfies
// gqlerrors.ExtendedError, so the server serializes the code under
// errors[].extensions.code.
type Error struct {
	Message string
	Code    string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

func badUserInput(message string) error {
	return &Error{Message: message, Code: "BAD_USER_INPUT"}
}

var errForbidden = &Error{Message: "not authorized", Code: "FORBIDDEN"}

// errInternal is deliberately uncoded and opaque; the real cause only goes
// to the log.
var errInternal = errors.New("an unexpected error occurred")

// wrapError classifies a service/repository failure into the error the
// client sees. Validation, not-found and conflict all share BAD_USER_INPUT;
// authentication failures stay uncoded so they reveal nothing; everything
// else is logged and replaced by an opaque error.
func wrapError(field string, err error) error {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return badUserInput(validationErr.Message)
	}

	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return badUserInput("the given user ID is not registered")
	case errors.Is(err, repository.ErrTodoNotFound):
		return badUserInput("the given todo ID is not registered")
	case errors.Is(err, repository.ErrDuplicateEmail):
		return badUserInput("email already in use, please choose another")
	case errors.Is(err, repository.ErrDuplicateUsername):
		return badUserInput("username already in use, please choose another")
	case errors.Is(err, repository.ErrUserRefNotFound):
		return badUserInput("the given user ID is not valid")
	case errors.Is(err, repository.ErrEmptyUpdate):
		return badUserInput("no fields to update: provide a new title, description or state")
	case errors.Is(err, service.ErrInvalidCredentials):
		return err
	default:
		slog.Error("resolver failed", "field", field, "error", err)
		return errInternal
	}
}
