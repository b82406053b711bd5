package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error sentinel values
var (
	ErrForbidden      = errors.New("operation not allowed")
	ErrBadRequest     = errors.New("malformed request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternal       = errors.New("internal server error")
	ErrNotImplemented = errors.New("not implemented")
	ErrCORSBlocked    = errors.New("request blocked by CORS policy")
)

// ApiErr is the single error type crossing the handler boundary. Every
// failure is converted into one of four classes before it reaches a
// caller: auth (401/403), validation (400), not-found (404) or store
// (500, generic message, details stay server-side).
type ApiErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Field      string // Field that caused the error (for validation errors)
	Cause      error  // The underlying cause of the error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{
		StatusCode: statusCode,
		err:        errors.New(message),
	}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if apiErr, ok := e.Cause.(*ApiErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &ApiErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *ApiErr) Unwrap() error {
	return e.err
}

// Common error constructors with appropriate HTTP status codes
func NewNotFoundError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusNotFound, err: errors.New(message)}
}

func NewForbiddenError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusForbidden, err: errors.New(message)}
}

func NewBadRequestError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

func NewInternalError(message string) *ApiErr {
	return &ApiErr{StatusCode: http.StatusInternalServerError, err: errors.New(message)}
}

// NewNotImplementedError marks a declared but unbuilt operation. The
// admin dashboard contracts return these so the boundary of "not yet
// built" is visible to callers instead of a silent no-op.
func NewNotImplementedError(operation string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotImplemented,
		err:        ErrNotImplemented,
		Details:    fmt.Sprintf("Operation %s is specified but not implemented", operation),
	}
}

func NewCORSError(origin string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrCORSBlocked,
		Details:    fmt.Sprintf("Origin '%s' is not allowed by CORS policy", origin),
	}
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
