package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	internal_errors "github.com/alexca-social/alexca/internal/errors"
	"github.com/alexca-social/alexca/internal/identity"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/alexca-social/alexca/internal/markdown"
	"github.com/alexca-social/alexca/internal/session"
)

type Handler struct {
	sessions  *session.Registry
	issuer    *identity.Issuer
	processor *markdown.TextProcessor
}

func New(sessions *session.Registry, issuer *identity.Issuer, processor *markdown.TextProcessor) *Handler {
	return &Handler{sessions: sessions, issuer: issuer, processor: processor}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("response encoding failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func parseIntParam(value string, name string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{Message: "Invalid " + name, StatusCode: http.StatusBadRequest}
	}
	return parsed, nil
}
