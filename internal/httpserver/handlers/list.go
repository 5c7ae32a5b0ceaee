package handlers

import (
	"errors"
	"net/http"

	"linkdeck/internal/domain"
	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/mw"
	"linkdeck/internal/logger"
	"linkdeck/internal/screen"
)

type listStateResponse struct {
	Mode  string            `json:"mode"`
	Items []domain.LinkItem `json:"items"`
}

type pressRequest struct {
	ID string `json:"id"`
}

type dragRequest struct {
	ActiveID string `json:"active_id"`
	OverID   string `json:"over_id"`
}

type dropRequest struct {
	ActiveID string            `json:"active_id"`
	Pointer  domain.Point      `json:"pointer"`
	Rects    []domain.ItemRect `json:"rects"`
}

type copyResponse struct {
	URL string `json:"url"`
}

// screenFor returns the list screen bound to the request's session.
func screenFor(d deps.Deps, r *http.Request) (*screen.List, bool) {
	session, ok := mw.SessionFromContext(r.Context())
	if !ok {
		return nil, false
	}
	return d.Screens.GetOrCreate(session.Token), true
}

func respondListState(w http.ResponseWriter, l *screen.List) {
	respondJSON(w, http.StatusOK, listStateResponse{
		Mode:  l.Mode().String(),
		Items: l.Items(),
	})
}

// ListState refreshes the screen from the store while viewing (the
// mount fetch) and reports mode plus the visible sequence.
func ListState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if l.Mode() == screen.ModeViewing {
			if err := l.Refresh(r.Context()); err != nil {
				respondError(w, http.StatusBadGateway, "failed to load links")
				return
			}
		}
		respondListState(w, l)
	}
}

// Press reports a held contact starting on an item body; holding past
// the threshold enters reorder mode.
func Press(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req pressRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		l.PointerDown(req.ID)
		respondListState(w, l)
	}
}

// Release reports the contact ending; before the threshold it cancels
// the pending long-press.
func Release(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		l.PointerUp()
		respondListState(w, l)
	}
}

// Drag relocates one draft item over another while reordering.
func Drag(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req dragRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := l.Drag(req.ActiveID, req.OverID); err != nil {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondListState(w, l)
	}
}

// Drop resolves the drag target from the release pointer position and
// the reported item bounds, then applies the move.
func Drop(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req dropRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := l.Drop(req.ActiveID, req.Pointer, req.Rects); err != nil {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondListState(w, l)
	}
}

// SaveOrder commits the draft ordering as one atomic batch.
func SaveOrder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := l.Save(r.Context()); err != nil {
			if errors.Is(err, screen.ErrNotReordering) {
				respondError(w, http.StatusConflict, err.Error())
				return
			}
			respondError(w, http.StatusBadGateway, "failed to save order")
			return
		}
		respondListState(w, l)
	}
}

// CancelReorder discards the draft and restores the persisted order.
func CancelReorder(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := l.Cancel(r.Context()); err != nil {
			respondError(w, http.StatusBadGateway, "failed to load links")
			return
		}
		respondListState(w, l)
	}
}

// Copy hands back the raw url for the clipboard action.
func Copy(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l, ok := screenFor(d, r)
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req pressRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		url, err := l.CopyURL(req.ID)
		if err != nil {
			d.Logger.Debug("copy target missing", logger.String("id", req.ID))
			respondError(w, http.StatusNotFound, "link not found")
			return
		}
		respondJSON(w, http.StatusOK, copyResponse{URL: url})
	}
}
