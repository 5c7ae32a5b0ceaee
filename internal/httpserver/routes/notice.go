package routes

import (
	"github.com/go-chi/chi/v5"

	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/handlers"
	"linkdeck/internal/httpserver/mw"
)

func init() { Register(registerNotice) }

func registerNotice(r chi.Router, d deps.Deps) {
	r.With(mw.RequireSession(d.Auth, d.Logger)).Get("/api/notice", handlers.Notice(d))
}
