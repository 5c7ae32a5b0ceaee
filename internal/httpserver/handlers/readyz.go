package handlers

import (
	"context"
	"net/http"
	"time"

	"linkdeck/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready bool `json:"ready"`
}

// Readyz reports readiness: the service is ready when the store answers
// a ping.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := d.Store.Ping(ctx); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
			return
		}
		respondJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
