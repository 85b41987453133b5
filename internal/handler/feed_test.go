package handler

import (
	"net/http"
	"testing"

	"github.com/alexca-social/alexca/internal/api"
	"github.com/alexca-social/alexca/internal/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFeedHandler(t *testing.T) {
	t.Run("seeded feed", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodGet, "/v1/feed", nil, cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.FeedResponse
		decodeBody(t, rr, &resp)
		require.Len(t, resp.Posts, 2)
		assert.Equal(t, "Мария", resp.Posts[0].Author.Name)
		assert.Equal(t, "Александр", resp.Posts[1].Author.Name)
		assert.Equal(t, 24, resp.Posts[1].LikeCount)
		assert.NotEmpty(t, resp.Posts[0].ContentHTML)
		assert.Empty(t, resp.Liked)
		assert.Contains(t, rr.Body.String(), `"liked":[]`, "liked must serialize as an array even when empty")
	})

	t.Run("markdown is rendered", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/feed/posts", []byte(`{"text": "Это **важно**"}`), cookie)
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp api.FeedResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/feed", nil, cookie), &resp)
		assert.Contains(t, resp.Posts[0].ContentHTML, "<strong>важно</strong>")
	})

	t.Run("without session", func(t *testing.T) {
		env := newTestEnv(t)

		rr := env.do(t, http.MethodGet, "/v1/feed", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCreatePostHandler(t *testing.T) {
	route := "/v1/feed/posts"

	t.Run("committed post lands on top", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, route, []byte(`{"text": "Всем привет!"}`), cookie)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "committed", outcome.Outcome)

		var feed api.FeedResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/feed", nil, cookie), &feed)
		require.Len(t, feed.Posts, 3)
		assert.Equal(t, "Всем привет!", feed.Posts[0].Content)
		assert.Equal(t, "Анна", feed.Posts[0].Author.Name)
		assert.Equal(t, "только что", feed.Posts[0].CreatedAt)
	})

	t.Run("forbidden topic is rejected with a notification", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, route, []byte(`{"text": "Давайте обсудим казино"}`), cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "rejected", outcome.Outcome)

		var feed api.FeedResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/feed", nil, cookie), &feed)
		assert.Len(t, feed.Posts, 2)

		var notifications api.NotificationListResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/notifications", nil, cookie), &notifications)
		require.Len(t, notifications.Notifications, 1)
		assert.Equal(t, notification.KindSoftRejection, notifications.Notifications[0].Kind)
	})

	t.Run("whitespace only is skipped silently", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, route, []byte(`{"text": "   "}`), cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "skipped", outcome.Outcome)

		var notifications api.NotificationListResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/notifications", nil, cookie), &notifications)
		assert.Empty(t, notifications.Notifications)
	})
}

func TestToggleLikeHandler(t *testing.T) {
	t.Run("like and unlike", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/feed/posts/1/like", nil, cookie)
		assert.Equal(t, http.StatusOK, rr.Code)

		var feed api.FeedResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/feed", nil, cookie), &feed)
		assert.Equal(t, 13, feed.Posts[0].LikeCount)
		assert.Equal(t, []int64{1}, feed.Liked)

		rr = env.do(t, http.MethodPost, "/v1/feed/posts/1/like", nil, cookie)
		assert.Equal(t, http.StatusOK, rr.Code)

		decodeBody(t, env.do(t, http.MethodGet, "/v1/feed", nil, cookie), &feed)
		assert.Equal(t, 12, feed.Posts[0].LikeCount)
		assert.Empty(t, feed.Liked)
	})

	t.Run("unknown post is skipped", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/feed/posts/999/like", nil, cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "skipped", outcome.Outcome)
	})

	t.Run("non-numeric post id", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/feed/posts/abc/like", nil, cookie)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAddCommentHandler(t *testing.T) {
	t.Run("committed comment", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/feed/posts/2/comments", []byte(`{"text": "Согласен!"}`), cookie)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var feed api.FeedResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/feed", nil, cookie), &feed)
		require.Len(t, feed.Posts[1].Comments, 2)
		assert.Equal(t, "Согласен!", feed.Posts[1].Comments[1].Text)
		assert.Equal(t, "Анна", feed.Posts[1].Comments[1].AuthorName)
	})

	t.Run("forbidden comment notifies even on unknown post", func(t *testing.T) {
		env := newTestEnv(t)
		cookie := env.login(t)

		rr := env.do(t, http.MethodPost, "/v1/feed/posts/999/comments", []byte(`{"text": "ставки на спорт"}`), cookie)

		assert.Equal(t, http.StatusOK, rr.Code)
		var outcome api.OutcomeResponse
		decodeBody(t, rr, &outcome)
		assert.Equal(t, "rejected", outcome.Outcome)

		var notifications api.NotificationListResponse
		decodeBody(t, env.do(t, http.MethodGet, "/v1/notifications", nil, cookie), &notifications)
		require.Len(t, notifications.Notifications, 1)
		assert.Equal(t, notification.KindSoftRejection, notifications.Notifications[0].Kind)
	})
}
