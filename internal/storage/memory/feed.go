// Package memory holds all session state. Nothing here survives the
// session: there is no on-disk or networked representation.
package memory

import (
	"sync"

	"github.com/alexca-social/alexca/internal/domain"
	internal_errors "github.com/alexca-social/alexca/internal/errors"
)

// FeedStorage owns the post sequence (most-recent-first), the comment
// sequences and the per-viewer like sets. Post and comment ids are
// strictly increasing in creation order; the post id is the sole
// ordering key.
type FeedStorage struct {
	mu            sync.RWMutex
	posts         []domain.Post
	likes         map[domain.UserId]domain.LikeSet
	nextPostId    domain.PostId
	nextCommentId domain.CommentId
}

func NewFeedStorage() *FeedStorage {
	return &FeedStorage{
		likes:         make(map[domain.UserId]domain.LikeSet),
		nextPostId:    1,
		nextCommentId: 1,
	}
}

// NewSeededFeedStorage returns feed storage pre-populated with the
// launch fixtures every fresh session starts from.
func NewSeededFeedStorage() *FeedStorage {
	s := NewFeedStorage()
	maria := domain.User{
		Id:          2,
		Name:        "Мария",
		AvatarRef:   "/v1/avatars/maria",
		AccentColor: "#33C3F0",
	}
	alex := domain.User{
		Id:          3,
		Name:        "Александр",
		AvatarRef:   "/v1/avatars/alex",
		AccentColor: "#0EA5E9",
	}
	s.posts = []domain.Post{
		{
			Id:        1,
			Author:    maria,
			Content:   "Привет всем! Очень рада присоединиться к Alex CA. Ищу новых друзей для общения 😊",
			LikeCount: 12,
			CreatedAt: "10 минут назад",
		},
		{
			Id:        2,
			Author:    alex,
			Content:   "Кто хочет обсудить путешествия? Недавно вернулся из Италии, впечатлений море!",
			LikeCount: 24,
			Comments:  []domain.Comment{{Id: 1, AuthorName: "Елена", Text: "Расскажи подробнее! Очень интересно"}},
			CreatedAt: "1 час назад",
		},
	}
	s.nextPostId = 3
	s.nextCommentId = 2
	return s
}

// CreatePost prepends a post so the sequence stays most-recent-first.
func (s *FeedStorage) CreatePost(data domain.PostCreationData, createdAt string) (domain.PostId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := domain.Post{
		Id:        s.nextPostId,
		Author:    data.Author,
		Content:   data.Content,
		CreatedAt: createdAt,
	}
	s.nextPostId++
	s.posts = append([]domain.Post{post}, s.posts...)
	return post.Id, nil
}

func (s *FeedStorage) AddComment(postId domain.PostId, authorName string, text string) (domain.CommentId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Id == postId {
			comment := domain.Comment{Id: s.nextCommentId, AuthorName: authorName, Text: text}
			s.nextCommentId++
			s.posts[i].Comments = append(s.posts[i].Comments, comment)
			return comment.Id, nil
		}
	}
	return 0, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: 404}
}

// ToggleLike flips the viewer's like-set membership for the post and
// moves the stored like count by exactly one in the same critical
// section, so the two never diverge. Returns the new state.
func (s *FeedStorage) ToggleLike(postId domain.PostId, viewerId domain.UserId) (liked bool, likes int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Id != postId {
			continue
		}
		set := s.likes[viewerId]
		if set == nil {
			set = make(domain.LikeSet)
			s.likes[viewerId] = set
		}
		if set.Has(postId) {
			delete(set, postId)
			s.posts[i].LikeCount--
			return false, s.posts[i].LikeCount, nil
		}
		set[postId] = struct{}{}
		s.posts[i].LikeCount++
		return true, s.posts[i].LikeCount, nil
	}
	return false, 0, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: 404}
}

// Posts returns a snapshot of the post sequence, most-recent-first.
func (s *FeedStorage) Posts() []domain.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Post, len(s.posts))
	copy(out, s.posts)
	for i := range out {
		if out[i].Comments != nil {
			comments := make([]domain.Comment, len(out[i].Comments))
			copy(comments, out[i].Comments)
			out[i].Comments = comments
		}
	}
	return out
}

// Likes returns a snapshot of the viewer's like set.
func (s *FeedStorage) Likes(viewerId domain.UserId) domain.LikeSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.LikeSet, len(s.likes[viewerId]))
	for id := range s.likes[viewerId] {
		out[id] = struct{}{}
	}
	return out
}
