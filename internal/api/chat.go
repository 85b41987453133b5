package api

import (
	"github.com/alexca-social/alexca/internal/domain"
)

// Request DTOs

type SelectChatRequest struct {
	Name      string `json:"name" validate:"required"`
	AvatarRef string `json:"avatar,omitempty"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

// Response DTOs

type ContactListResponse struct {
	Contacts []domain.Contact `json:"contacts"`
}

// ConversationResponse wraps the active conversation
type ConversationResponse struct {
	domain.Conversation
}
