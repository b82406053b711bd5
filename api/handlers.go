package api

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Dependencies) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(
			deps.DB.ProjectRepo(),
			deps.DB.TeamMemberRepo(),
			deps.DB.CategoryRepo(),
			deps.DB.CategoryOptionValueRepo(),
			deps.DB.ProjectOptionRepo(),
			deps.DB.UserRepo(),
		),
		categoryHandler: newCategoryHandler(deps.DB.CategoryRepo()),
		profileHandler:  newProfileHandler(deps.Roles),
		adminHandler:    newAdminHandler(deps.Roles),
	}
}
