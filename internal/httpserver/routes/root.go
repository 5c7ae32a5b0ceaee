package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkdeck/internal/httpserver/deps"
)

func init() { Register(registerRoot) }

func registerRoot(r chi.Router, d deps.Deps) {
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"service":"linkdeck","version":"` + d.Version + `"}`))
	})
}
