package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/campusforge/showcase-backend/auth"
	"github.com/campusforge/showcase-backend/config"
	"github.com/campusforge/showcase-backend/database"
	"github.com/campusforge/showcase-backend/rolestore"
)

// Dependencies bundles the external collaborators every handler may
// need: the relational store, the token verifier and the identity-
// attribute store.
type Dependencies struct {
	DB       database.Database
	Verifier auth.Verifier
	Roles    rolestore.Store
}

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(deps Dependencies) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(deps, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 30),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(deps Dependencies, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(RequestIDMiddleware)
	chiRouter.Use(LogInternalServerErrors)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handlers := initializeHandlers(deps)
	authMiddleware := newAuthMiddleware(deps.Verifier)
	roleMiddleware := newRoleMiddleware(deps.DB.UserRepo())

	setupRoutes(chiRouter, handlers, authMiddleware, roleMiddleware)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
