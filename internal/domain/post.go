package domain

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Author  User
	Content PostContent
}

type Comment struct {
	Id         CommentId `json:"id"`
	AuthorName string    `json:"author"`
	Text       string    `json:"text"`
}

type Post struct {
	Id        PostId      `json:"id"`
	Author    User        `json:"author"`
	Content   PostContent `json:"content"`
	LikeCount int         `json:"likes"`
	Comments  []Comment   `json:"comments"`
	// Display label, not a machine timestamp ("только что", "1 час назад", ...)
	CreatedAt string `json:"timestamp"`
}

// LikeSet is the set of post ids the current viewer has liked.
// Tracked per viewer, separate from Post.LikeCount; the two are
// always updated together.
type LikeSet map[PostId]struct{}

func (s LikeSet) Has(id PostId) bool {
	_, ok := s[id]
	return ok
}
