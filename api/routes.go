package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public, authenticated and admin route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, roleMiddleware roleMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Get("/projects/{projectId}", handlers.projectHandler.getProject())
		r.Get("/categories", handlers.categoryHandler.listCategories())

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/profile-projects", handlers.projectHandler.profileProjects())
			r.Get("/profile-role", handlers.profileHandler.profileRole())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectId}", handlers.projectHandler.updateProject())
			r.Delete("/projects", handlers.projectHandler.deleteProject())

			// Admin shell, superadmin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(roleMiddleware.requireSuperAdmin)

				r.Get("/admins", handlers.adminHandler.listAdmins())
				r.Post("/admins", handlers.adminHandler.addAdmin())
				r.Delete("/admins/{email}", handlers.adminHandler.removeAdmin())

				// Declared dashboard contracts, not yet built
				r.Get("/pending-projects", handlers.adminHandler.pendingProjects())
				r.Post("/projects/{projectId}/feature", handlers.adminHandler.featureProject())
			})
		})
	})
}
