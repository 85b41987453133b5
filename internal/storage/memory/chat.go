package memory

import (
	"sync"

	"github.com/alexca-social/alexca/internal/domain"
	internal_errors "github.com/alexca-social/alexca/internal/errors"
)

// ChatStorage owns the contact list, per-contact message histories and
// the active-conversation pointer. At most one conversation is active;
// the rest are dormant. Histories are created lazily on first use and
// dropped wholesale when a conversation is discarded.
type ChatStorage struct {
	mu        sync.RWMutex
	contacts  []domain.Contact
	histories map[domain.UserId][]domain.Message
	active    *domain.UserId
	nextMsgId domain.MsgId
}

func NewChatStorage() *ChatStorage {
	return &ChatStorage{
		histories: make(map[domain.UserId][]domain.Message),
		nextMsgId: 1,
	}
}

// NewSeededChatStorage returns chat storage with the launch contact
// list. Contacts carry no stored history until the first message.
func NewSeededChatStorage() *ChatStorage {
	s := NewChatStorage()
	s.contacts = []domain.Contact{
		{Id: 2, Name: "Мария", AvatarRef: "/v1/avatars/maria", LastMessage: "Привет! Как дела?", Online: true},
		{Id: 3, Name: "Александр", AvatarRef: "/v1/avatars/alex", LastMessage: "Спасибо за совет!", Online: false},
	}
	return s
}

func (s *ChatStorage) Contacts() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Contact, len(s.contacts))
	copy(out, s.contacts)
	return out
}

// Select makes the contact's conversation the active one, registering
// the contact if it is not in the list yet (opening a chat from a feed
// post's author works this way).
func (s *ChatStorage) Select(contact domain.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	known := false
	for _, c := range s.contacts {
		if c.Id == contact.Id {
			known = true
			break
		}
	}
	if !known {
		s.contacts = append(s.contacts, contact)
	}
	if _, ok := s.histories[contact.Id]; !ok {
		s.histories[contact.Id] = nil
	}
	id := contact.Id
	s.active = &id
}

// Active returns a snapshot of the active conversation, or nil when no
// conversation is selected.
func (s *ChatStorage) Active() *domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return nil
	}
	var contact domain.Contact
	for _, c := range s.contacts {
		if c.Id == *s.active {
			contact = c
			break
		}
	}
	history := s.histories[*s.active]
	messages := make([]domain.Message, len(history))
	copy(messages, history)
	return &domain.Conversation{Contact: contact, Messages: messages}
}

func (s *ChatStorage) HasActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active != nil
}

// AppendMessage appends to the active conversation's history.
func (s *ChatStorage) AppendMessage(senderId domain.UserId, text domain.MsgText, timestamp string) (domain.MsgId, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return 0, &internal_errors.ErrorWithStatusCode{Message: "No active conversation", StatusCode: 404}
	}
	msg := domain.Message{
		Id:        s.nextMsgId,
		Text:      text,
		SenderId:  senderId,
		Timestamp: timestamp,
	}
	s.nextMsgId++
	s.histories[*s.active] = append(s.histories[*s.active], msg)
	return msg.Id, nil
}

// Discard drops the active conversation entirely: its history is
// deleted and the active pointer is cleared, returning the UI to the
// "no conversation selected" state.
func (s *ChatStorage) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return
	}
	delete(s.histories, *s.active)
	s.active = nil
}
