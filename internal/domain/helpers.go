package domain

import "fmt"

// for debug
func (p *Post) String() string {
	s := fmt.Sprintf("[id:%d, author:%s, likes:%d, created:%s, comments:[", p.Id, p.Author.Name, p.LikeCount, p.CreatedAt)
	for i, c := range p.Comments {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %s", c.AuthorName, c.Text)
	}
	return s + "]]"
}

func (m *Message) String() string {
	return fmt.Sprintf("[id:%d, sender:%d, at:%s, text:%s]", m.Id, m.SenderId, m.Timestamp, m.Text)
}
