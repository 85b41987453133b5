package setup

import (
	"github.com/alexca-social/alexca/internal/config"
	"github.com/alexca-social/alexca/internal/handler"
	"github.com/alexca-social/alexca/internal/identity"
	"github.com/alexca-social/alexca/internal/markdown"
	"github.com/alexca-social/alexca/internal/middleware"
	"github.com/alexca-social/alexca/internal/moderation"
	"github.com/alexca-social/alexca/internal/notification"
	"github.com/alexca-social/alexca/internal/service"
	"github.com/alexca-social/alexca/internal/session"
	"github.com/alexca-social/alexca/internal/storage/memory"
	"github.com/alexca-social/alexca/internal/token"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Sessions *session.Registry
	Handler  *handler.Handler
	Middlew  *middleware.SessionMiddleware
	Public   config.Public
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	engine := buildEngine(cfg.Public.Moderation)

	factory := func(notifier notification.Notifier) (service.FeedService, service.ChatService) {
		feed := service.NewFeed(memory.NewSeededFeedStorage(), engine, notifier)
		chat := service.NewChat(memory.NewSeededChatStorage(), engine, notifier)
		return feed, chat
	}

	tokens := token.New(cfg.TokenKey(), cfg.SessionTTL())
	sessions := session.NewRegistry(factory, tokens, cfg.SessionTTL())

	issuer := identity.NewIssuer()
	processor := markdown.New()

	h := handler.New(sessions, issuer, processor)
	mw := middleware.NewSession(sessions)

	return &Dependencies{
		Sessions: sessions,
		Handler:  h,
		Middlew:  mw,
		Public:   cfg.Public,
	}, nil
}

// buildEngine applies config keyword overrides on top of the built-in
// lists. An empty override keeps the default for that surface.
func buildEngine(m config.Moderation) *moderation.Engine {
	feed := moderation.FeedForbiddenTopics
	if len(m.FeedKeywords) > 0 {
		feed = moderation.RuleSet{Name: feed.Name, Keywords: m.FeedKeywords}
	}
	chat := moderation.ConversationExtremeContent
	if len(m.ChatKeywords) > 0 {
		chat = moderation.RuleSet{Name: chat.Name, Keywords: m.ChatKeywords}
	}
	return moderation.New(feed, chat)
}
