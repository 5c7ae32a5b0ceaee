package routes

import (
	"github.com/go-chi/chi/v5"

	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/handlers"
	"linkdeck/internal/httpserver/mw"
)

func init() { Register(registerLinks) }

func registerLinks(r chi.Router, d deps.Deps) {
	guarded := r.With(mw.RequireSession(d.Auth, d.Logger))

	guarded.Get("/api/links", handlers.ListLinks(d))
	guarded.Post("/api/links", handlers.CreateLink(d))
	guarded.Get("/api/links/{id}", handlers.GetLink(d))
	guarded.Put("/api/links/{id}", handlers.UpdateLink(d))
	guarded.Delete("/api/links/{id}", handlers.DeleteLink(d))
}
