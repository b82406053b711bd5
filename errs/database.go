package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewDatabaseError creates a new database error with details about the
// operation. The details and cause are logged server-side; callers only
// see the status and a generic message.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "foreign key constraint"):
			return &ApiErr{
				StatusCode: http.StatusBadRequest,
				err:        fmt.Errorf("invalid reference in %s", entity),
				Details:    "The referenced resource does not exist or cannot be linked",
				Cause:      cause,
			}
		case strings.Contains(errStr, "record not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s not found", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}
