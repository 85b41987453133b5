package service

import (
	"strings"

	"github.com/alexca-social/alexca/internal/domain"
	internal_errors "github.com/alexca-social/alexca/internal/errors"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/alexca-social/alexca/internal/moderation"
)

// Label every freshly created post carries; the seed posts keep their
// own labels.
const postCreatedLabel = "только что"

// to mock service in tests
type FeedService interface {
	CreatePost(author domain.User, text string) Outcome
	ToggleLike(postId domain.PostId, viewerId domain.UserId) Outcome
	AddComment(postId domain.PostId, authorName string, text string) Outcome
	Posts() []domain.Post
	Likes(viewerId domain.UserId) domain.LikeSet
}

type Feed struct {
	storage    FeedStorage
	classifier Classifier
	notifier   Notifier
}

type FeedStorage interface {
	CreatePost(data domain.PostCreationData, createdAt string) (domain.PostId, error)
	AddComment(postId domain.PostId, authorName string, text string) (domain.CommentId, error)
	ToggleLike(postId domain.PostId, viewerId domain.UserId) (liked bool, likes int, err error)
	Posts() []domain.Post
	Likes(viewerId domain.UserId) domain.LikeSet
}

func NewFeed(storage FeedStorage, classifier Classifier, notifier Notifier) FeedService {
	return &Feed{storage, classifier, notifier}
}

// CreatePost publishes a post to the shared feed. Whitespace-only
// drafts are dropped silently; drafts tripping the feed keyword list
// are discarded with a soft rejection and no state change.
func (f *Feed) CreatePost(author domain.User, text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return OutcomeSkipped
	}
	if f.classifier.Classify(text, moderation.SurfaceFeed) == moderation.Rejected {
		logger.Log.Info("post rejected by moderation", "component", "feed", "author", author.Id)
		f.notifier.SoftRejection(MsgPostRejected)
		return OutcomeRejected
	}

	if _, err := f.storage.CreatePost(domain.PostCreationData{Author: author, Content: text}, postCreatedLabel); err != nil {
		logger.Log.Error("create post failed", "component", "feed", "error", err)
		return OutcomeSkipped
	}
	f.notifier.Success(MsgPostPublished)
	return OutcomeCommitted
}

// ToggleLike flips the viewer's like for the post. Two identical calls
// cancel out. Likes carry no notification and an unknown post id is a
// silent no-op.
func (f *Feed) ToggleLike(postId domain.PostId, viewerId domain.UserId) Outcome {
	if _, _, err := f.storage.ToggleLike(postId, viewerId); err != nil {
		if isNotFound(err) {
			return OutcomeSkipped
		}
		logger.Log.Error("toggle like failed", "component", "feed", "error", err)
		return OutcomeSkipped
	}
	return OutcomeCommitted
}

// AddComment appends a comment to the target post. The moderation check
// runs before the post lookup, so a forbidden comment on a stale post
// id still reports a rejection.
func (f *Feed) AddComment(postId domain.PostId, authorName string, text string) Outcome {
	if strings.TrimSpace(text) == "" {
		return OutcomeSkipped
	}
	if f.classifier.Classify(text, moderation.SurfaceFeed) == moderation.Rejected {
		logger.Log.Info("comment rejected by moderation", "component", "feed", "post", postId)
		f.notifier.SoftRejection(MsgCommentRejected)
		return OutcomeRejected
	}

	if _, err := f.storage.AddComment(postId, authorName, text); err != nil {
		if isNotFound(err) {
			return OutcomeSkipped
		}
		logger.Log.Error("add comment failed", "component", "feed", "error", err)
		return OutcomeSkipped
	}
	f.notifier.Success(MsgCommentAdded)
	return OutcomeCommitted
}

func (f *Feed) Posts() []domain.Post {
	return f.storage.Posts()
}

func (f *Feed) Likes(viewerId domain.UserId) domain.LikeSet {
	return f.storage.Likes(viewerId)
}

func isNotFound(err error) bool {
	statusErr, ok := err.(*internal_errors.ErrorWithStatusCode)
	return ok && statusErr.StatusCode == 404
}
