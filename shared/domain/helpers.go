package domain

import (
	"fmt"
	"time"
)

// Clone returns a deep copy so callers never alias store-owned replies.
func (m Message) Clone() Message {
	c := m
	if m.Replies != nil {
		c.Replies = make([]Message, len(m.Replies))
		for i := range m.Replies {
			c.Replies[i] = m.Replies[i].Clone()
		}
	}
	return c
}

// FindReply returns the index of the reply with the given id, or -1.
func (m *Message) FindReply(id MsgId) int {
	for i := range m.Replies {
		if m.Replies[i].Id == id {
			return i
		}
	}
	return -1
}

// for debug
func (m *Message) String() string {
	s := fmt.Sprintf("[id:%s, sender:%s, receiver:%s, anonymous:%t, likes:%d, created:%s, replies:[",
		m.Id, m.SenderId, m.ReceiverId, m.Anonymous, m.Likes, m.CreatedAt.Format(time.StampMilli))
	for i, r := range m.Replies {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s + "]]"
}
