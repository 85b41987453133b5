package handler

import (
	"net/http"

	"github.com/alexca-social/alexca/internal/avatar"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/go-chi/chi/v5"
)

// GetAvatar renders the deterministic identicon for a seed. The same
// seed always yields the same image, so clients may cache aggressively.
func (h *Handler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	seed := chi.URLParam(r, "seed")
	if seed == "" {
		http.Error(w, "Missing avatar seed", http.StatusBadRequest)
		return
	}

	png, err := avatar.PNG(seed)
	if err != nil {
		logger.Log.Error("avatar encoding failed", "seed", seed, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}
