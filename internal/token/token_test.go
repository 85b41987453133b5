package token

import (
	"testing"
	"time"
)

var secretKey string = "testTokenKey"

func TestSessionIdRoundTrip(t *testing.T) {
	svc := New(secretKey, 10*time.Second)
	tokenStr, err := svc.NewToken("session-123")
	if err != nil {
		t.Fatal(err)
	}

	sid, err := svc.SessionId(tokenStr)
	if err != nil {
		t.Fatal(err)
	}
	if sid != "session-123" {
		t.Errorf("%s != session-123", sid)
	}
}

func TestSessionIdExpired(t *testing.T) {
	svc := New(secretKey, -time.Second)
	tokenStr, err := svc.NewToken("session-123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err = svc.SessionId(tokenStr); err == nil {
		t.Error("We shouldn't accept an expired token")
	}
}

func TestSessionIdInvalidSecretKey(t *testing.T) {
	tokenStr, err := New(secretKey, 10*time.Second).NewToken("session-123")
	if err != nil {
		t.Fatal(err)
	}

	if _, err = New("invalidSecret", 10*time.Second).SessionId(tokenStr); err == nil {
		t.Error("We shouldn't accept a token with invalid signature")
	}
}

func TestSessionIdGarbage(t *testing.T) {
	if _, err := New(secretKey, 10*time.Second).SessionId("not-a-token"); err == nil {
		t.Error("We shouldn't accept garbage input")
	}
}
