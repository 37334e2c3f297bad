package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
	})

	// protected routes: the auth middleware attaches the user when the
	// bearer token checks out, the handlers reject requests without one
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/users/me", h.me)
		r.Get("/api/users/{username}/orders", h.userOrders)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
