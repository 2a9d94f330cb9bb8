package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrValidation     = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("already exists")
	ErrDivisionByZero = errors.New("division by zero")
)

// FieldError reports a single malformed field. It matches ErrValidation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func Field(field, reason string) *FieldError {
	return &FieldError{Field: field, Reason: reason}
}

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Code maps err onto the gRPC code a server would answer with.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrDivisionByZero):
		return codes.InvalidArgument
	case errors.Is(err, ErrNotFound):
		return codes.NotFound
	case errors.Is(err, ErrConflict):
		return codes.AlreadyExists
	default:
		return codes.Internal
	}
}

// Status converts err into a gRPC status error. Errors that already carry
// a status are returned unchanged.
func Status(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(Code(err), err.Error())
}

// HTTPStatus returns the HTTP status, a stable error code string and a
// client-safe message for err. It understands both domain errors and gRPC
// status errors.
func HTTPStatus(err error) (int, string, string) {
	if err == nil {
		return http.StatusOK, "OK", ""
	}

	st := status.Convert(Status(err))
	msg := st.Message()

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", msg
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", msg
	case codes.AlreadyExists:
		return http.StatusConflict, "ALREADY_EXISTS", msg
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", msg
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
