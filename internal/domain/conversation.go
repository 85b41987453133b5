package domain

// Contact is the other participant of a conversation as shown in the
// chat list. LastMessage and Online are display state seeded at login.
type Contact struct {
	Id          UserId `json:"id"`
	Name        string `json:"name"`
	AvatarRef   string `json:"avatar"`
	LastMessage string `json:"last_message,omitempty"`
	Online      bool   `json:"online"`
}

type Message struct {
	Id       MsgId   `json:"id"`
	Text     MsgText `json:"text"`
	SenderId UserId  `json:"sender"`
	// Display label (HH:MM), not a machine timestamp
	Timestamp string `json:"timestamp"`
}

type Conversation struct {
	Contact  Contact   `json:"contact"`
	Messages []Message `json:"messages"`
}
