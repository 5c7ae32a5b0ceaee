package handlers

import (
	"net/http"

	"linkdeck/internal/httpserver/deps"
)

// Notice reports the currently visible notification, if any.
func Notice(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, ok := d.Notifier.Current()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondJSON(w, http.StatusOK, msg)
	}
}
