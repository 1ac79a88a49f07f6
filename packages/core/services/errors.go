package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence error")
)

// ServiceError carries the kind of failure, the operation and a caller-facing message.
// errors.Is matches it against its Kind and against the wrapped cause.
type ServiceError struct {
	Kind error
	Op   string
	Msg  string
	Err  error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

func (e *ServiceError) Is(target error) bool {
	return target == e.Kind
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func validationError(op, format string, args ...any) error {
	return &ServiceError{Kind: ErrValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func notFoundError(op, format string, args ...any) error {
	return &ServiceError{Kind: ErrNotFound, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func conflictError(op, format string, args ...any) error {
	return &ServiceError{Kind: ErrConflict, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// storeError classifies a Ledger error. Service errors pass through unchanged so the
// first classification wins.
func storeError(log *slog.Logger, op string, err error, attrs ...any) error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		return &ServiceError{Kind: ErrNotFound, Op: op, Msg: "record not found", Err: err}
	case errors.Is(err, store.ErrDuplicate):
		return &ServiceError{Kind: ErrConflict, Op: op, Msg: "record already exists", Err: err}
	case errors.Is(err, store.ErrInvalidField):
		return &ServiceError{Kind: ErrValidation, Op: op, Msg: "field cannot be updated", Err: err}
	}
	log.Error("persistence failure", append([]any{"op", op, "error", err}, attrs...)...)
	return &ServiceError{Kind: ErrPersistence, Op: op, Msg: "storage failure", Err: err}
}

// Message returns the caller-facing text of err. Persistence details are hidden.
func Message(err error) string {
	var se *ServiceError
	if !errors.As(err, &se) || se.Kind == ErrPersistence {
		return "Internal server error"
	}
	return se.Msg
}
