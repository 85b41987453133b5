package service

import (
	"strings"
	"time"

	"github.com/alexca-social/alexca/internal/domain"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/alexca-social/alexca/internal/moderation"
)

// to mock service in tests
type ChatService interface {
	SelectConversation(contact domain.Contact)
	SendMessage(senderId domain.UserId, text string) Outcome
	Active() *domain.Conversation
	Contacts() []domain.Contact
}

type Chat struct {
	storage    ChatStorage
	classifier Classifier
	notifier   Notifier
	now        func() time.Time
}

type ChatStorage interface {
	Select(contact domain.Contact)
	AppendMessage(senderId domain.UserId, text domain.MsgText, timestamp string) (domain.MsgId, error)
	Active() *domain.Conversation
	Contacts() []domain.Contact
	HasActive() bool
	Discard() // drop the active conversation and its history
}

func NewChat(storage ChatStorage, classifier Classifier, notifier Notifier) ChatService {
	return &Chat{storage, classifier, notifier, time.Now}
}

// SelectConversation makes the contact's conversation active. No
// moderation is involved.
func (c *Chat) SelectConversation(contact domain.Contact) {
	c.storage.Select(contact)
}

// SendMessage appends a message to the active conversation. The chat
// surface is the harsh one: a keyword hit not only discards the text
// but tears the whole active conversation down, unlike the feed's soft
// block.
func (c *Chat) SendMessage(senderId domain.UserId, text string) Outcome {
	if !c.storage.HasActive() || strings.TrimSpace(text) == "" {
		return OutcomeSkipped
	}
	if c.classifier.Classify(text, moderation.SurfaceConversation) == moderation.Rejected {
		logger.Log.Info("message rejected by moderation, discarding conversation",
			"component", "chat", "sender", senderId)
		c.notifier.SevereRejection(MsgChatViolation)
		c.storage.Discard()
		return OutcomeRejected
	}

	if _, err := c.storage.AppendMessage(senderId, text, c.now().Format("15:04")); err != nil {
		if isNotFound(err) {
			return OutcomeSkipped
		}
		logger.Log.Error("append message failed", "component", "chat", "error", err)
		return OutcomeSkipped
	}
	return OutcomeCommitted
}

func (c *Chat) Active() *domain.Conversation {
	return c.storage.Active()
}

func (c *Chat) Contacts() []domain.Contact {
	return c.storage.Contacts()
}
