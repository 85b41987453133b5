package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/alexca-social/alexca/internal/session"
	"github.com/alexca-social/alexca/internal/utils"
)

// Key to store the session in the request context
type key int

const SessionKey key = 0

const SessionCookieName = "session"

// Registry is what the middleware needs from the session registry.
type Registry interface {
	Resolve(tokenStr string) (*session.Session, error)
}

type SessionMiddleware struct {
	registry Registry
}

func NewSession(registry Registry) *SessionMiddleware {
	return &SessionMiddleware{registry: registry}
}

// Require rejects requests without a resolvable session token. This is
// session lookup, not authorization: anyone with a token issued at
// login gets through.
func (m *SessionMiddleware) Require() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := m.resolve(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), SessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *SessionMiddleware) resolve(r *http.Request) (*session.Session, error) {
	var tokenStr string

	// Try cookie first (browser clients), then the Authorization header
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		tokenStr = cookie.Value
	}
	if tokenStr == "" {
		header := r.Header.Get("Authorization")
		tokenStr = strings.TrimPrefix(header, "Bearer ")
	}

	return m.registry.Resolve(tokenStr)
}

// FromContext returns the session stored by Require, or nil.
func FromContext(r *http.Request) *session.Session {
	s, _ := r.Context().Value(SessionKey).(*session.Session)
	return s
}
