package services

import (
	"errors"
	"fmt"

	"github.com/sjperalta/contratus-api/internal/repository"
)

// Common service errors. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound        = errors.New("registro não encontrado")
	ErrInvalidPassword = errors.New("senha inválida")
	ErrUnauthorized    = errors.New("não autorizado")
	ErrForbidden       = errors.New("acesso negado")
	ErrValidation      = errors.New("dados inválidos")
	ErrPrecondition    = errors.New("operação não permitida no estado atual")
	ErrConflict        = errors.New("registro em conflito")
	ErrUnavailable     = errors.New("serviço temporariamente indisponível")
)

// Error carries a user-facing message and unwraps to one of the kinds above
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func forbiddenError(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

func preconditionError(format string, args ...any) error {
	return newError(ErrPrecondition, format, args...)
}

func conflictError(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

func unavailableError(format string, args ...any) error {
	return newError(ErrUnavailable, format, args...)
}

func notFoundError(message string) error {
	return newError(ErrNotFound, "%s", message)
}

// lookupError turns a missing row into a not-found error with message
func lookupError(err error, message string) error {
	if repository.IsNotFound(err) {
		return notFoundError(message)
	}
	return err
}
