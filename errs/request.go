package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")
)

// Authentication & Authorization Errors
var (
	ErrMissingToken     = errors.New("missing access token")
	ErrExpiredToken     = errors.New("expired access token")
	ErrInvalidToken     = errors.New("invalid access token")
	ErrInsufficientRole = errors.New("insufficient role")
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidJSON          = errors.New("invalid JSON")
)

func Malformed(payloadName string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, payloadName+" malformed")
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// Authentication & Authorization Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Authorization header with a Bearer token is required",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Token verification failed",
		Cause:      cause,
	}
}

func NewExpiredTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrExpiredToken,
	}
}

func NewInsufficientRoleError(required string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInsufficientRole,
		Details:    fmt.Sprintf("Requires %s role", required),
	}
}

// Request & Input-Validation Error Constructors
func NewMalformedPayloadError(payloadType string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMalformedPayload,
		Details:    fmt.Sprintf("Malformed %s payload", payloadType),
		Cause:      cause,
		Field:      "payload",
	}
}

func NewMissingRequiredFieldError(fieldName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingRequiredField,
		Details:    fmt.Sprintf("Missing required field: %s", fieldName),
		Field:      fieldName,
	}
}

func NewInvalidFieldError(fieldName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidField,
		Details:    fmt.Sprintf("Invalid field %s: %s", fieldName, reason),
		Field:      fieldName,
	}
}

func NewInvalidJSONError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrInvalidJSON,
		Details:    "Invalid JSON format",
		Cause:      cause,
		Field:      "json",
	}
}
