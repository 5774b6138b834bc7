package wire

import (
	"user-registration/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser registers the registration and user lookup routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Post("/signup", userHandler.Signup)
	r.Post("/activate", userHandler.Activate)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)    // GET /users?page=1&per_page=10
		r.Get("/{id}", userHandler.GetUser) // GET /users/{id}
	})
}
