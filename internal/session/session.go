// Package session ties one logged-in user to their in-memory state.
// Everything a session owns (feed, conversations, like sets,
// notifications) is created fresh at login and gone at logout or
// eviction; nothing persists.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/alexca-social/alexca/internal/domain"
	internal_errors "github.com/alexca-social/alexca/internal/errors"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/alexca-social/alexca/internal/middleware/metrics"
	"github.com/alexca-social/alexca/internal/notification"
	"github.com/alexca-social/alexca/internal/service"
	"github.com/alexca-social/alexca/internal/token"
	"github.com/google/uuid"
)

// Session is the per-login state bundle. The user record is what the
// stores read to stamp authorship; the core never mutates it except
// through the profile editor. Handlers run concurrently, so reads and
// edits go through the mutex like the stores' own state does.
type Session struct {
	Id            string
	Feed          service.FeedService
	Chat          service.ChatService
	Notifications *notification.Recorder
	CreatedAt     time.Time

	mu   sync.RWMutex
	user domain.User
}

// User returns a copy of the session's user record.
func (s *Session) User() domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// UpdateUser applies an edit to the user record under the lock. The
// record stays unchanged when apply returns an error.
func (s *Session) UpdateUser(apply func(user *domain.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.user
	if err := apply(&updated); err != nil {
		return err
	}
	s.user = updated
	return nil
}

// StoreFactory builds the fresh seeded stores a new session starts
// with, wired to that session's notifier.
type StoreFactory func(notifier notification.Notifier) (service.FeedService, service.ChatService)

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	factory  StoreFactory
	tokens   token.TokenService
	ttl      time.Duration
}

func NewRegistry(factory StoreFactory, tokens token.TokenService, ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		factory:  factory,
		tokens:   tokens,
		ttl:      ttl,
	}
}

// Create opens a session for the user and returns it with its signed
// token handle.
func (r *Registry) Create(user domain.User) (*Session, string, error) {
	recorder := notification.NewRecorder()
	feed, chat := r.factory(recorder)

	s := &Session{
		Id:            uuid.NewString(),
		Feed:          feed,
		Chat:          chat,
		Notifications: recorder,
		CreatedAt:     time.Now(),
		user:          user,
	}

	tokenStr, err := r.tokens.NewToken(s.Id)
	if err != nil {
		return nil, "", err
	}

	r.mu.Lock()
	r.sessions[s.Id] = s
	r.mu.Unlock()

	metrics.SessionOpened()
	logger.Log.Info("session created", "component", "session_registry", "session", s.Id, "user", user.Id)
	return s, tokenStr, nil
}

// Resolve returns the session a token handle points to.
func (r *Registry) Resolve(tokenStr string) (*Session, error) {
	sid, err := r.tokens.SessionId(tokenStr)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	s, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Session not found", StatusCode: 401}
	}
	return s, nil
}

// Destroy drops the session and all its state. Unknown ids are a
// silent no-op.
func (r *Registry) Destroy(sessionId string) {
	r.mu.Lock()
	_, existed := r.sessions[sessionId]
	delete(r.sessions, sessionId)
	r.mu.Unlock()

	if existed {
		metrics.SessionsClosed(1)
		logger.Log.Info("session destroyed", "component", "session_registry", "session", sessionId)
	}
}

// evictExpired drops sessions older than the token TTL. Their tokens
// are already invalid; this reclaims the memory.
func (r *Registry) evictExpired() {
	cutoff := time.Now().Add(-r.ttl)

	r.mu.Lock()
	evicted := 0
	for id, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	r.mu.Unlock()

	if evicted > 0 {
		metrics.SessionsClosed(evicted)
		logger.Log.Info("expired sessions evicted", "component", "session_registry", "count", evicted)
	}
}

// StartBackgroundEviction periodically reclaims expired sessions.
func (r *Registry) StartBackgroundEviction(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started session eviction", "component", "session_registry", "interval", interval, "ttl", r.ttl)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.evictExpired()
			case <-ctx.Done():
				logger.Log.Info("session registry shutting down gracefully", "component", "session_registry")
				return
			}
		}
	}()
}
