package handlers

import (
	"errors"
	"net/http"

	"linkdeck/internal/domain"
	"linkdeck/internal/httpserver/deps"
	"linkdeck/internal/httpserver/mw"
	"linkdeck/internal/logger"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	FirstTime bool   `json:"first_time"`
	Token     string `json:"token"`
}

type sessionStateResponse struct {
	State string `json:"state"`
	User  string `json:"user,omitempty"`
}

// Login signs the user in, silently provisioning an unknown identifier
// as a new account.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		firstTime, token, err := d.Auth.Login(r.Context(), req.Username, req.Password)
		switch {
		case err == nil:

		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, err.Error())
			return

		case errors.Is(err, domain.ErrWrongPassword):
			d.Notifier.Show("login failed")
			respondError(w, http.StatusUnauthorized, "wrong password")
			return

		default:
			d.Logger.Error("login failed", logger.Error(err))
			d.Notifier.Show("login failed")
			respondError(w, http.StatusBadGateway, "login failed")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		if firstTime {
			d.Notifier.Show("signed up and logged in")
		} else {
			d.Notifier.Show("logged in")
		}

		respondJSON(w, http.StatusOK, loginResponse{FirstTime: firstTime, Token: token})
	}
}

// SessionState reports the current session state without gating.
func SessionState(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := d.Auth.Resolve(r.Context(), mw.SessionToken(r))
		if err != nil {
			respondJSON(w, http.StatusOK, sessionStateResponse{State: "unauthenticated"})
			return
		}
		respondJSON(w, http.StatusOK, sessionStateResponse{
			State: "authenticated",
			User:  session.UserName,
		})
	}
}

// Logout closes the session and drops its list screen.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := mw.SessionFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		if err := d.Auth.Logout(r.Context(), session.Token); err != nil {
			d.Logger.Error("logout failed", logger.Error(err))
			respondError(w, http.StatusBadGateway, "logout failed")
			return
		}
		d.Screens.Delete(session.Token)

		http.SetCookie(w, &http.Cookie{
			Name:     mw.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
