package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router with every route and middleware attached.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(5, "application/json", "text/plain", "text/typescript"))

	router.Group(func(r chi.Router) {
		r.Use(middleware.NoCache)
		r.Get("/environment.json", h.getEnvironmentJSON)
		r.Get("/environment.ts", h.getEnvironmentModule)
	})

	router.Get("/login", h.login)
	router.Get("/logout", h.logout)
	router.Post("/api/token/inspect", h.inspectToken)
	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(notFoundForWrongMethod)

	return router
}
