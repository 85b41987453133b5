package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexca-social/alexca/internal/api"
	"github.com/alexca-social/alexca/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectChat(t *testing.T, env *testEnv, cookie *http.Cookie, id string, name string) *httptest.ResponseRecorder {
	t.Helper()
	return env.do(t, http.MethodPost, "/v1/chats/"+id+"/select", []byte(`{"name": "`+name+`"}`), cookie)
}

func TestGetContactsHandler(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	rr := env.do(t, http.MethodGet, "/v1/chats", nil, cookie)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.ContactListResponse
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Contacts, 2)
	assert.Equal(t, "Мария", resp.Contacts[0].Name)
	assert.True(t, resp.Contacts[0].Online)
	assert.Equal(t, "Александр", resp.Contacts[1].Name)
	assert.False(t, resp.Contacts[1].Online)
}

func TestSelectChatHandler(t *testing.T) {
	t.Run("select known contact", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := selectChat(t, env, cookie, "2", "Мария")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = env.do(t, http.MethodGet, "/v1/chats/active", nil, cookie)
		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.ConversationResponse
		decodeBody(t, rr, &resp)
		assert.Equal(t, "Мария", resp.Contact.Name)
		assert.Empty(t, resp.Messages)
	})

	t.Run("unknown contact is registered", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := selectChat(t, env, cookie, "42", "Елена")
		assert.Equal(t, http.StatusOK, rr.Code)

		var contacts api.ContactListResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/chats", nil, cookie), &contacts)
		assert.Len(t, contacts.Contacts, 3)
	})

	t.Run("missing name", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/chats/2/select", []byte(`{}`), cookie)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("non-numeric contact id", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/chats/abc/select", []byte(`{"name": "Елена"}`), cookie)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestActiveChatHandler(t *testing.T) {
	t.Run("no active conversation", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodGet, "/v1/chats/active", nil, cookie)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestSendMessageHandler(t *testing.T) {
	route := "/v1/chats/messages"

	t.Run("committed message lands in the active conversation", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)
		require.Equal(t, http.StatusOK, selectChat(t, env, cookie, "2", "Мария").Code)

		rr := env.do(t, http.MethodPost, route, []byte(`{"text": "Привет, Мария!"}`), cookie)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "committed", outcome.Outcome)

		var conv api.ConversationResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/chats/active", nil, cookie), &conv)
		require.Len(t, conv.Messages, 1)
		assert.Equal(t, "Привет, Мария!", conv.Messages[0].Text)
	})

	t.Run("extreme content tears the conversation down", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)
		require.Equal(t, http.StatusOK, selectChat(t, env, cookie, "2", "Мария").Code)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, route, []byte(`{"text": "Привет!"}`), cookie).Code)

		rr := env.do(t, http.MethodPost, route, []byte(`{"text": "давай обсудим порно"}`), cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "rejected", outcome.Outcome)

		assert.Equal(t, http.StatusNoContent, env.do(t, http.MethodGet, "/v1/chats/active", nil, cookie).Code)

		var notifications api.NotificationListResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/notifications", nil, cookie), &notifications)
		require.NotEmpty(t, notifications.Notifications)
		last := notifications.Notifications[len(notifications.Notifications)-1]
		assert.Equal(t, notification.KindSevereRejection, last.Kind)
	})

	t.Run("history is gone after teardown", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)
		require.Equal(t, http.StatusOK, selectChat(t, env, cookie, "2", "Мария").Code)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, route, []byte(`{"text": "Привет!"}`), cookie).Code)
		env.do(t, http.MethodPost, route, []byte(`{"text": "групповой чат"}`), cookie)

		require.Equal(t, http.StatusOK, selectChat(t, env, cookie, "2", "Мария").Code)

		var conv api.ConversationResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/chats/active", nil, cookie), &conv)
		assert.Empty(t, conv.Messages)
	})

	t.Run("no active conversation is skipped", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, route, []byte(`{"text": "давай обсудим порно"}`), cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "skipped", outcome.Outcome)

		var notifications api.NotificationListResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/notifications", nil, cookie), &notifications)
		assert.Empty(t, notifications.Notifications)
	})
}
