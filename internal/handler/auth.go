package handler

import (
	"net/http"

	"github.com/alexca-social/alexca/internal/api"
	mw "github.com/alexca-social/alexca/internal/middleware"
	"github.com/alexca-social/alexca/internal/utils"
)

// Login issues a user record from a name/email pair and opens a fresh
// session for it. No credentials are verified.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	user, err := h.issuer.Issue(body.Name, body.Email, body.AgreedToTerms)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	_, tokenStr, err := h.sessions.Create(user)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    tokenStr,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, api.LoginResponse{Token: tokenStr, User: user})
}

// Logout destroys the session and everything it owns.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	h.sessions.Destroy(s.Id)

	http.SetCookie(w, &http.Cookie{
		Name:     mw.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusOK)
}
