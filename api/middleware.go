package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusforge/showcase-backend/auth"
	"github.com/campusforge/showcase-backend/database"
	"github.com/campusforge/showcase-backend/errs"
	"github.com/campusforge/showcase-backend/models"
)

type authMiddleware struct {
	verifier  auth.Verifier
	responder Responder
}

func newAuthMiddleware(verifier auth.Verifier) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		verifier:  verifier,
		responder: NewResponder(logger),
	}
}

// authenticate rejects the request before any handler (and so before
// any store query) runs unless the Authorization header carries a token
// the verifier accepts.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		ident, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.responder.WriteError(w, errs.NewInvalidTokenError(err))
			return
		}

		updatedCtx := ctxWithIdentity(r.Context(), ident)
		next.ServeHTTP(w, r.WithContext(updatedCtx))
	})
}

type roleMiddleware struct {
	users     database.UserRepo
	responder Responder
}

func newRoleMiddleware(users database.UserRepo) roleMiddleware {
	logger := log.With().Str("handlerName", "roleMiddleware").Logger()
	return roleMiddleware{
		users:     users,
		responder: NewResponder(logger),
	}
}

// requireSuperAdmin gates the admin identity-management endpoints on
// the caller's role in the users table. Client-side gating alone is not
// trusted.
func (m roleMiddleware) requireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, err := identityFromCtx(r.Context())
		if err != nil {
			m.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := m.users.FindByUID(r.Context(), ident.UID)
		if err != nil {
			m.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil || user.Role != models.RoleSuperAdmin {
			m.responder.WriteError(w, errs.NewInsufficientRoleError(models.RoleSuperAdmin))
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

// RequestIDMiddleware tags each request with an id that the logging
// middleware and handlers can correlate on.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		logger := log.With().Str("requestId", requestID).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
