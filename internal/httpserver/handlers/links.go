package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkdeck/internal/domain"
	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/logger"
)

type linkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ListLinks returns the full collection ascending by order.
func ListLinks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := d.Store.ListLinks(r.Context())
		if err != nil {
			d.Logger.Error("failed to list links", logger.Error(err))
			d.Notifier.Show("failed to load links")
			respondError(w, http.StatusBadGateway, "failed to load links")
			return
		}
		respondJSON(w, http.StatusOK, links)
	}
}

// CreateLink validates input and appends a new link at max(order)+1.
func CreateLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req linkRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		// Validation failures never reach the store.
		title, url, err := domain.NormalizeLinkInput(req.Title, req.URL)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		link, err := d.Store.CreateLink(r.Context(), title, url)
		if err != nil {
			d.Logger.Error("failed to create link", logger.Error(err))
			d.Notifier.Show("failed to add url")
			respondError(w, http.StatusBadGateway, "failed to add url")
			return
		}

		d.Notifier.Show("url added")
		respondJSON(w, http.StatusCreated, link)
	}
}

// GetLink returns one link; a missing id is a normal not-found outcome.
func GetLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		link, err := d.Store.GetLink(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				d.Notifier.Show("link not found")
				respondError(w, http.StatusNotFound, "link not found")
				return
			}
			d.Logger.Error("failed to get link", logger.String("id", id), logger.Error(err))
			respondError(w, http.StatusBadGateway, "failed to load link")
			return
		}
		respondJSON(w, http.StatusOK, link)
	}
}

// UpdateLink rewrites title and url; order and createdAt stay as they
// are.
func UpdateLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req linkRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		title, url, err := domain.NormalizeLinkInput(req.Title, req.URL)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := d.Store.UpdateLink(r.Context(), id, title, url); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				d.Notifier.Show("link not found")
				respondError(w, http.StatusNotFound, "link not found")
				return
			}
			d.Logger.Error("failed to update link", logger.String("id", id), logger.Error(err))
			d.Notifier.Show("failed to update url")
			respondError(w, http.StatusBadGateway, "failed to update url")
			return
		}

		d.Notifier.Show("url updated")
		link, err := d.Store.GetLink(r.Context(), id)
		if err != nil {
			respondJSON(w, http.StatusOK, nil)
			return
		}
		respondJSON(w, http.StatusOK, link)
	}
}

// DeleteLink removes a link. Deleting a missing id succeeds; remaining
// links keep their relative order.
func DeleteLink(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := d.Store.DeleteLink(r.Context(), id); err != nil {
			d.Logger.Error("failed to delete link", logger.String("id", id), logger.Error(err))
			d.Notifier.Show("failed to delete url")
			respondError(w, http.StatusBadGateway, "failed to delete url")
			return
		}

		d.Notifier.Show("url deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}
