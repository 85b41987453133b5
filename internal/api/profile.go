package api

import (
	"github.com/alexca-social/alexca/internal/domain"
	"github.com/alexca-social/alexca/internal/identity"
	"github.com/alexca-social/alexca/internal/notification"
)

// Request DTOs

type UpdateProfileRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Language    *string `json:"language,omitempty"`
}

// Response DTOs

type ProfileResponse struct {
	User domain.User `json:"user"`
}

type LanguageListResponse struct {
	Languages []identity.Language `json:"languages"`
}

type NotificationListResponse struct {
	Notifications []notification.Notification `json:"notifications"`
}
