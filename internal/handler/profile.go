package handler

import (
	"net/http"

	"github.com/alexca-social/alexca/internal/api"
	"github.com/alexca-social/alexca/internal/domain"
	"github.com/alexca-social/alexca/internal/identity"
	mw "github.com/alexca-social/alexca/internal/middleware"
	"github.com/alexca-social/alexca/internal/utils"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, api.ProfileResponse{User: s.User()})
}

// UpdateProfile edits the session user's profile. This is the only
// place the session's user record changes.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.UpdateProfileRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	upd := domain.ProfileUpdate{
		Name:        body.Name,
		Description: body.Description,
		AccentColor: body.Color,
		Language:    body.Language,
	}
	if err := s.UpdateUser(func(user *domain.User) error {
		return identity.ApplyUpdate(user, upd)
	}); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	s.Notifications.Success("Профиль обновлен!")
	writeJSON(w, api.ProfileResponse{User: s.User()})
}

func (h *Handler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.LanguageListResponse{Languages: identity.Languages})
}

func (h *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	writeJSON(w, api.NotificationListResponse{Notifications: s.Notifications.All()})
}
