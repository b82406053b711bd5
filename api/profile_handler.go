package api

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusforge/showcase-backend/errs"
	"github.com/campusforge/showcase-backend/rolestore"
)

type profileHandler struct {
	responder Responder
	logger    zerolog.Logger
	roles     rolestore.Store
}

func newProfileHandler(roles rolestore.Store) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder: NewResponder(logger),
		logger:    logger,
		roles:     roles,
	}
}

// profileRole returns the caller's role attribute from the identity-
// attribute store, keyed by the email claim of the verified token. A
// missing document means no elevated role: the response carries a null
// role rather than an error.
func (h profileHandler) profileRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := identityFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}
		if ident.Email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("token carries no email claim"))
			return
		}

		var role *string
		found, err := h.roles.Role(r.Context(), ident.Email)
		switch {
		case errors.Is(err, rolestore.ErrNoRole):
			// leave role null
		case err != nil:
			h.responder.WriteError(w, errs.NewInternalError("role lookup failed"))
			return
		default:
			role = &found
		}

		h.responder.WriteJSON(w, map[string]any{
			"email": ident.Email,
			"role":  role,
		})
	}
}
