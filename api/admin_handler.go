package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusforge/showcase-backend/errs"
	"github.com/campusforge/showcase-backend/models"
	"github.com/campusforge/showcase-backend/rolestore"
)

// ModerationQueue is the dashboard contract the admin shell depends on.
// The operations are specified but not yet built; the placeholder
// implementation answers 501 so the gap is visible instead of a silent
// no-op.
type ModerationQueue interface {
	PendingProjects(ctx context.Context) ([]models.Project, error)
	FeatureProject(ctx context.Context, projectID uint) error
}

type unimplementedModerationQueue struct{}

func (unimplementedModerationQueue) PendingProjects(context.Context) ([]models.Project, error) {
	return nil, errs.NewNotImplementedError("PendingProjects")
}

func (unimplementedModerationQueue) FeatureProject(context.Context, uint) error {
	return errs.NewNotImplementedError("FeatureProject")
}

type adminHandler struct {
	responder  Responder
	logger     zerolog.Logger
	roles      rolestore.Store
	moderation ModerationQueue
}

func newAdminHandler(roles rolestore.Store) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		roles:      roles,
		moderation: unimplementedModerationQueue{},
	}
}

type adminEntry struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// listAdmins returns every admin identity document, sorted by email.
func (h adminHandler) listAdmins() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roles, err := h.roles.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("listing admin identities failed"))
			return
		}

		admins := make([]adminEntry, 0, len(roles))
		for email, role := range roles {
			admins = append(admins, adminEntry{Email: email, Role: role})
		}
		sort.Slice(admins, func(i, j int) bool { return admins[i].Email < admins[j].Email })

		h.responder.WriteJSON(w, map[string]any{
			"admins": admins,
			"total":  len(admins),
		})
	}
}

// addAdmin records an admin identity document for an email.
func (h adminHandler) addAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body adminEntry
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if body.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if body.Role != models.RoleAdmin && body.Role != models.RoleSuperAdmin {
			h.responder.WriteError(w, errs.NewInvalidFieldError("role", "must be admin or superadmin"))
			return
		}

		if err := h.roles.SetRole(r.Context(), body.Email, body.Role); err != nil {
			h.responder.WriteError(w, errs.NewInternalError("storing admin identity failed"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, body)
	}
}

// removeAdmin deletes the admin identity document for an email.
func (h adminHandler) removeAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}

		err := h.roles.DeleteRole(r.Context(), email)
		if errors.Is(err, rolestore.ErrNoRole) {
			h.responder.WriteError(w, errs.NewNotFoundError("admin identity not found"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("deleting admin identity failed"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "admin identity removed",
		})
	}
}

func (h adminHandler) pendingProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.moderation.PendingProjects(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

func (h adminHandler) featureProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(chi.URLParam(r, "projectId"))
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.moderation.FeatureProject(r.Context(), projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
