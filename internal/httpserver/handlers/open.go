package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkdeck/internal/domain"
	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/logger"
)

// Open redirects to the stored url verbatim. The isolation headers keep
// the opened context from referencing back to the opener.
func Open(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		link, err := d.Store.GetLink(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				respondError(w, http.StatusNotFound, "link not found")
				return
			}
			d.Logger.Error("failed to open link", logger.String("id", id), logger.Error(err))
			respondError(w, http.StatusBadGateway, "failed to load link")
			return
		}

		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		http.Redirect(w, r, link.URL, http.StatusFound)
	}
}
