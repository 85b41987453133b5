package api

import (
	"github.com/alexca-social/alexca/internal/domain"
)

// Request DTOs

type CreatePostRequest struct {
	Text string `json:"text"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

// Response DTOs

// PostResponse wraps a post with its rendered HTML
type PostResponse struct {
	domain.Post
	ContentHTML string `json:"content_html"`
}

// FeedResponse carries the post sequence (most-recent-first) and the
// viewer's liked post ids.
type FeedResponse struct {
	Posts []PostResponse  `json:"posts"`
	Liked []domain.PostId `json:"liked"`
}

// OutcomeResponse reports how a store operation resolved. Rejections
// are not errors; the recorded notifications carry the user-facing
// message.
type OutcomeResponse struct {
	Outcome string `json:"outcome"`
}
