package domain

type (
	UserId   = int64
	UserName = string
	Email    = string

	PostId      = int64
	PostContent = string

	CommentId = int64

	MsgId   = int64
	MsgText = string

	LanguageCode = string
)
