package http

import (
	"github.com/go-chi/chi/v5"
)

// Init builds the router with the ordered middleware chain in front of the
// user routes. Chain order matters: the recovery boundary wraps everything
// below it (the trace-ID middleware above it only attaches the logger), the
// auth gate short-circuits before the request logger runs, and the logger
// observes the final status of whatever the dispatcher produced.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withRecover)
	router.Use(h.auth)
	router.Use(h.withLogging)

	router.Get("/users", h.listUsers)
	router.Post("/users", h.createUser)
	router.Get("/users/{userID}", h.getUser)
	router.Put("/users/{userID}", h.updateUser)
	router.Delete("/users/{userID}", h.deleteUser)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
