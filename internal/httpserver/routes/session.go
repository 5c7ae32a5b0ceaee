package routes

import (
	"github.com/go-chi/chi/v5"

	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/handlers"
	"linkdeck/internal/httpserver/mw"
)

func init() { Register(registerSession) }

func registerSession(r chi.Router, d deps.Deps) {
	r.With(mw.RateLimit(d.LoginRateLimit)).Post("/api/session", handlers.Login(d))
	r.Get("/api/session", handlers.SessionState(d))
	r.With(mw.RequireSession(d.Auth, d.Logger)).Delete("/api/session", handlers.Logout(d))
}
