package domain

type User struct {
	Id          UserId `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	AvatarRef   string `json:"avatar"`
	AccentColor string `json:"color"`
	Description string `json:"description"`
	Language    string `json:"language,omitempty"`
}

// ProfileUpdate carries the editable subset of a User.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name        *string
	Description *string
	AccentColor *string
	Language    *string
}
