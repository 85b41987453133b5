package service

import (
	"github.com/alexca-social/alexca/internal/moderation"
	"github.com/alexca-social/alexca/internal/notification"
)

// Outcome is how a store operation resolved. There are no fatal errors
// in this core: every failure is either a silent skip (empty input,
// stale entity id) or a reported rejection the user can retry.
type Outcome int

const (
	// OutcomeCommitted - state mutated, success reported outward.
	OutcomeCommitted Outcome = iota
	// OutcomeSkipped - silent no-op (empty input or unknown entity).
	OutcomeSkipped
	// OutcomeRejected - moderation rejection, state unchanged except
	// for the conversation teardown on the chat surface.
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Classifier is the moderation gate both stores consult before any
// text-bearing mutation.
type Classifier interface {
	Classify(text string, surface moderation.Surface) moderation.Verdict
}

// Notifier is the outward notification surface.
type Notifier = notification.Notifier

// User-facing notification texts.
const (
	MsgPostPublished   = "Пост опубликован!"
	MsgPostRejected    = "Пост содержит запрещенный контент и отправлен на модерацию"
	MsgCommentAdded    = "Комментарий добавлен!"
	MsgCommentRejected = "Комментарий содержит запрещенный контент"
	MsgChatViolation   = "Сообщение содержит неприемлемый контент. Чат будет удален."
)
