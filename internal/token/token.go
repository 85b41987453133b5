// Package token wraps the signed session handle. It is not
// authentication: the claims only carry the session id so a browser can
// find its in-memory session again.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	internal_errors "github.com/alexca-social/alexca/internal/errors"
	"github.com/alexca-social/alexca/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

type TokenService interface {
	NewToken(sessionId string) (string, error)
	SessionId(tokenStr string) (string, error)
}

type Token struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) TokenService {
	return &Token{secretKey, ttl}
}

func (t *Token) NewToken(sessionId string) (string, error) {
	claims := jwt.MapClaims{}
	claims["sid"] = sessionId
	claims["exp"] = time.Now().Add(t.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(t.secretKey))
	if err != nil {
		logger.Log.Error("token signing failed", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (t *Token) SessionId(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(t.secretKey), nil
	})
	if err != nil {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}
	if !token.Valid {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid session token", StatusCode: http.StatusUnauthorized}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid session token", StatusCode: http.StatusUnauthorized}
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", &internal_errors.ErrorWithStatusCode{Message: "Invalid session token", StatusCode: http.StatusUnauthorized}
	}
	return sid, nil
}
