package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campusforge/showcase-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal first so a marshaling failure never produces a half-written body
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError converts err into one of the four caller-visible classes.
// Anything that is not an *errs.ApiErr is logged with its full chain and
// surfaces as a generic 500; internals never reach the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
			"status":  "error",
		})
		return
	}

	if apiErr.StatusCode >= 500 && apiErr.StatusCode != http.StatusNotImplemented {
		// Server-side detail stays server-side.
		r.logger.Error().Str("details", apiErr.GetFullError()).Msg(apiErr.Error())
		w.WriteHeader(apiErr.StatusCode)
		r.WriteJSON(w, map[string]interface{}{
			"error":  "Internal Server Error",
			"status": "error",
		})
		return
	}

	response := map[string]interface{}{
		"error":  apiErr.Error(),
		"status": "error",
	}

	// Add field information if present (for validation errors)
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
