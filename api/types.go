package api

import (
	"github.com/campusforge/showcase-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	categoryHandler categoryHandler
	profileHandler  profileHandler
	adminHandler    adminHandler
}

// categoryPair is a fully resolved (category, option value) pair. The
// owner-list endpoint only emits pairs where both sides resolved.
type categoryPair struct {
	CategoryName string `json:"categoryName"`
	OptionName   string `json:"optionName"`
}

// profileProject is one entry of the owner's project list: the project
// row, its members in row order and its resolved category pairs. Both
// slices are always present, never null.
type profileProject struct {
	models.Project
	Members    []models.TeamMember `json:"members"`
	Categories []categoryPair      `json:"categories"`
}

// projectDetail is the public single-project response: trimmed member
// projections plus null-preserving category pairs.
type projectDetail struct {
	models.Project
	Members    []models.MemberSummary   `json:"members"`
	Categories []models.ProjectCategory `json:"categories"`
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"projectName"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
