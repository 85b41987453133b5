package api

import (
	"github.com/alexca-social/alexca/internal/domain"
)

// Request DTOs

type LoginRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email" validate:"omitempty,email"`
	AgreedToTerms bool   `json:"agreed_to_terms"`
}

// Response DTOs

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
