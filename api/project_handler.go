package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/campusforge/showcase-backend/auth"
	"github.com/campusforge/showcase-backend/database"
	"github.com/campusforge/showcase-backend/errs"
	"github.com/campusforge/showcase-backend/models"
)

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	validate       *validator.Validate
	projects       database.ProjectRepo
	members        database.TeamMemberRepo
	categories     database.CategoryRepo
	optionValues   database.CategoryOptionValueRepo
	projectOptions database.ProjectOptionRepo
	users          database.UserRepo
}

func newProjectHandler(
	projects database.ProjectRepo,
	members database.TeamMemberRepo,
	categories database.CategoryRepo,
	optionValues database.CategoryOptionValueRepo,
	projectOptions database.ProjectOptionRepo,
	users database.UserRepo,
) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		validate:       validator.New(),
		projects:       projects,
		members:        members,
		categories:     categories,
		optionValues:   optionValues,
		projectOptions: projectOptions,
		users:          users,
	}
}

type memberPayload struct {
	Name     string `json:"name" validate:"required,max=100"`
	Linkedin string `json:"linkedin" validate:"omitempty,max=255"`
}

type optionPayload struct {
	CategoryID uint `json:"categoryId" validate:"required"`
	OptionID   uint `json:"optionId" validate:"required"`
}

type projectPayload struct {
	ProjectName        string          `json:"projectName" validate:"required,max=255"`
	ProjectDescription string          `json:"projectDescription"`
	ProjectLink        string          `json:"projectLink" validate:"omitempty,max=255"`
	CustomDomain       string          `json:"customDomain" validate:"omitempty,max=255"`
	Members            []memberPayload `json:"members" validate:"dive"`
	Options            []optionPayload `json:"options" validate:"dive"`
}

// profileProjects lists the caller's projects with members and resolved
// category pairs. Resolution fans out per project; within one link row
// the category and option lookups also run concurrently. Pairs whose
// category or option no longer resolves are dropped.
func (h projectHandler) profileProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := identityFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projects, err := h.projects.FindByOwner(r.Context(), ident.UID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		resolved := make([][]categoryPair, len(projects))
		g, gctx := errgroup.WithContext(r.Context())
		for i := range projects {
			i := i
			g.Go(func() error {
				pairs, err := h.resolveCategories(gctx, projects[i].ProjectID)
				if err != nil {
					return err
				}
				resolved[i] = pairs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("resolve", "project categories", err))
			return
		}

		response := make([]profileProject, 0, len(projects))
		for i, project := range projects {
			members := project.Members
			if members == nil {
				members = []models.TeamMember{}
			}
			response = append(response, profileProject{
				Project:    project,
				Members:    members,
				Categories: resolved[i],
			})
		}

		h.responder.WriteJSON(w, response)
	}
}

// resolveCategories resolves a project's link rows through two point
// lookups per row. Unresolved rows are filtered out; result order
// follows link-row order regardless of lookup completion order.
func (h projectHandler) resolveCategories(ctx context.Context, projectID uint) ([]categoryPair, error) {
	links, err := h.projectOptions.FindByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	pairs := []categoryPair{}
	for _, link := range links {
		if link.CategoryID == nil || link.OptionID == nil {
			continue
		}

		var category *models.Category
		var value *models.CategoryOptionValue

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			category, err = h.categories.FindByID(gctx, *link.CategoryID)
			return err
		})
		g.Go(func() error {
			var err error
			value, err = h.optionValues.FindByID(gctx, *link.OptionID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		if category == nil || value == nil {
			continue
		}
		pairs = append(pairs, categoryPair{
			CategoryName: category.Name,
			OptionName:   value.OptionName,
		})
	}
	return pairs, nil
}

// getProject returns one project with its member summaries and
// null-preserving category pairs. Public, no token required.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(chi.URLParam(r, "projectId"))
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projects.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		members, err := h.members.FindByProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "team members", err))
			return
		}

		pairs, err := h.projectOptions.ResolveForProject(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("resolve", "project categories", err))
			return
		}

		project.Members = nil
		h.responder.WriteJSON(w, projectDetail{
			Project:    *project,
			Members:    members,
			Categories: pairs,
		})
	}
}

// createProject creates a project owned by the caller, with members and
// selected category options.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := identityFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		payload, apiErr := h.decodePayload(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.checkOptionPairing(r.Context(), payload.Options); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		owner := ident.UID
		project := models.Project{
			ProjectName:        payload.ProjectName,
			ProjectDescription: payload.ProjectDescription,
			ProjectLink:        payload.ProjectLink,
			CustomDomain:       payload.CustomDomain,
			CreatedByUID:       &owner,
		}
		for _, m := range payload.Members {
			project.Members = append(project.Members, models.TeamMember{Name: m.Name, Linkedin: m.Linkedin})
		}
		for _, o := range payload.Options {
			cid, oid := o.CategoryID, o.OptionID
			project.Options = append(project.Options, models.ProjectOption{CategoryID: &cid, OptionID: &oid})
		}

		if err := h.projects.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.writeDetail(w, r, project.ProjectID)
	}
}

// updateProject replaces a project's fields, members and options.
// Allowed for the owner or a user with an admin role.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := identityFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		projectID, apiErr := parseProjectID(chi.URLParam(r, "projectId"))
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		existing, err := h.projects.FindByID(r.Context(), projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.authorizeMutation(r.Context(), ident, existing); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		payload, apiErr := h.decodePayload(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		if err := h.checkOptionPairing(r.Context(), payload.Options); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		updated := *existing
		updated.Members = nil
		updated.Options = nil
		updated.ProjectName = payload.ProjectName
		updated.ProjectDescription = payload.ProjectDescription
		updated.ProjectLink = payload.ProjectLink
		updated.CustomDomain = payload.CustomDomain

		if err := h.projects.Update(r.Context(), &updated); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		members := make([]models.TeamMember, 0, len(payload.Members))
		for _, m := range payload.Members {
			members = append(members, models.TeamMember{Name: m.Name, Linkedin: m.Linkedin})
		}
		if err := h.members.ReplaceForProject(r.Context(), projectID, members); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("replace", "team members", err))
			return
		}

		options := make([]models.ProjectOption, 0, len(payload.Options))
		for _, o := range payload.Options {
			cid, oid := o.CategoryID, o.OptionID
			options = append(options, models.ProjectOption{CategoryID: &cid, OptionID: &oid})
		}
		if err := h.projectOptions.ReplaceForProject(r.Context(), projectID, options); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("replace", "project options", err))
			return
		}

		h.writeDetail(w, r, projectID)
	}
}

// deleteProject removes a project named in the request body. Allowed
// for the owner or a user with an admin role; the check runs server-
// side regardless of what the client UI showed.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ident, err := identityFromCtx(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var body struct {
			ProjectID uint `json:"projectId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if body.ProjectID == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectId"))
			return
		}

		project, err := h.projects.FindByID(r.Context(), body.ProjectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.authorizeMutation(r.Context(), ident, project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projects.Delete(r.Context(), body.ProjectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// authorizeMutation permits the project owner and admin-roled users.
func (h projectHandler) authorizeMutation(ctx context.Context, ident auth.Identity, project *models.Project) error {
	if project.OwnedBy(ident.UID) {
		return nil
	}
	user, err := h.users.FindByUID(ctx, ident.UID)
	if err != nil {
		return wrapDatabaseError("find", "user", err)
	}
	if user == nil || !user.IsAdmin() {
		return errs.NewForbiddenError("not the project owner")
	}
	return nil
}

func (h projectHandler) decodePayload(r *http.Request) (projectPayload, *errs.ApiErr) {
	var payload projectPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error().Err(err).Msg("Failed to decode project request body")
		return payload, errs.NewInvalidJSONError(err)
	}

	if err := h.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return payload, errs.NewInvalidFieldError(fe.Field(), fe.Tag())
		}
		return payload, errs.NewMalformedPayloadError("project", err)
	}
	return payload, nil
}

// checkOptionPairing rejects option selections whose option value does
// not belong to the named category, so inconsistent link rows cannot be
// written in the first place.
func (h projectHandler) checkOptionPairing(ctx context.Context, options []optionPayload) error {
	for _, opt := range options {
		category, err := h.categories.FindByID(ctx, opt.CategoryID)
		if err != nil {
			return wrapDatabaseError("find", "category", err)
		}
		if category == nil {
			return errs.NewInvalidFieldError("categoryId", "unknown category")
		}

		value, err := h.optionValues.FindByID(ctx, opt.OptionID)
		if err != nil {
			return wrapDatabaseError("find", "category option value", err)
		}
		if value == nil {
			return errs.NewInvalidFieldError("optionId", "unknown option value")
		}
		if value.CategoryID == nil || *value.CategoryID != opt.CategoryID {
			return errs.NewInvalidFieldError("optionId", "option does not belong to the selected category")
		}
	}
	return nil
}

// writeDetail reloads a project and responds with the detail shape.
func (h projectHandler) writeDetail(w http.ResponseWriter, r *http.Request, projectID uint) {
	project, err := h.projects.FindByID(r.Context(), projectID)
	if err != nil || project == nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
		return
	}

	members, err := h.members.FindByProject(r.Context(), projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("find", "team members", err))
		return
	}

	pairs, err := h.projectOptions.ResolveForProject(r.Context(), projectID)
	if err != nil {
		h.responder.WriteError(w, wrapDatabaseError("resolve", "project categories", err))
		return
	}

	project.Members = nil
	h.responder.WriteJSON(w, projectDetail{
		Project:    *project,
		Members:    members,
		Categories: pairs,
	})
}

// parseProjectID accepts only positive integers.
func parseProjectID(raw string) (uint, *errs.ApiErr) {
	if raw == "" {
		return 0, errs.NewBadRequestError("missing projectId")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid projectId")
	}
	return uint(id), nil
}
