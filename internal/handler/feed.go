package handler

import (
	"encoding/json"
	"net/http"

	"github.com/alexca-social/alexca/internal/api"
	"github.com/alexca-social/alexca/internal/domain"
	"github.com/alexca-social/alexca/internal/logger"
	mw "github.com/alexca-social/alexca/internal/middleware"
	"github.com/alexca-social/alexca/internal/middleware/metrics"
	"github.com/alexca-social/alexca/internal/service"
	"github.com/alexca-social/alexca/internal/utils"
	"github.com/go-chi/chi/v5"
)

// GetFeed returns the post sequence, most-recent-first, plus the
// viewer's liked post ids.
func (h *Handler) GetFeed(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	posts := s.Feed.Posts()
	response := api.FeedResponse{
		Posts: make([]api.PostResponse, len(posts)),
		Liked: make([]domain.PostId, 0),
	}
	for i, post := range posts {
		response.Posts[i] = api.PostResponse{Post: post, ContentHTML: h.processor.Render(post.Content)}
	}
	for id := range s.Feed.Likes(s.User().Id) {
		response.Liked = append(response.Liked, id)
	}

	writeJSON(w, response)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.CreatePostRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	outcome := s.Feed.CreatePost(s.User(), body.Text)
	writeOutcome(w, "create_post", outcome, http.StatusCreated)
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	postId, err := parseIntParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	outcome := s.Feed.ToggleLike(postId, s.User().Id)
	writeOutcome(w, "toggle_like", outcome, http.StatusOK)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	s := mw.FromContext(r)
	if s == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	postId, err := parseIntParam(chi.URLParam(r, "post"), "post id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.AddCommentRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	outcome := s.Feed.AddComment(postId, s.User().Name, body.Text)
	writeOutcome(w, "add_comment", outcome, http.StatusCreated)
}

// writeOutcome reports how the operation resolved. Rejections and
// skips are not HTTP errors: the response stays 200 and the outcome
// field carries the resolution.
func writeOutcome(w http.ResponseWriter, operation string, outcome service.Outcome, committedStatus int) {
	metrics.ObserveOutcome(operation, outcome.String())

	w.Header().Set("Content-Type", "application/json")
	if outcome == service.OutcomeCommitted {
		w.WriteHeader(committedStatus)
	}
	if err := json.NewEncoder(w).Encode(api.OutcomeResponse{Outcome: outcome.String()}); err != nil {
		logger.Log.Error("response encoding failed", "error", err)
	}
}
