package routes

import (
	"github.com/go-chi/chi/v5"

	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/handlers"
	"linkdeck/internal/httpserver/mw"
)

func init() { Register(registerList) }

// List screen operations: raw pointer events drive long-press entry
// into reorder mode, drags mutate the session's draft ordering, save
// commits it as one batch.
func registerList(r chi.Router, d deps.Deps) {
	guarded := r.With(mw.RequireSession(d.Auth, d.Logger))

	guarded.Get("/api/list", handlers.ListState(d))
	guarded.Post("/api/list/press", handlers.Press(d))
	guarded.Post("/api/list/release", handlers.Release(d))
	guarded.Post("/api/list/drag", handlers.Drag(d))
	guarded.Post("/api/list/drop", handlers.Drop(d))
	guarded.Post("/api/list/save", handlers.SaveOrder(d))
	guarded.Post("/api/list/cancel", handlers.CancelReorder(d))
	guarded.Post("/api/list/copy", handlers.Copy(d))
}
