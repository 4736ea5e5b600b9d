package domain

import (
	"strings"
	"time"
)

// Message is either a top-level message or a reply stored in its parent's Replies.
// The type allows arbitrary nesting; the message store only ever appends replies
// to top-level messages, so depth never exceeds 1.
type Message struct {
	Id         MsgId     `json:"id"`
	Content    MsgText   `json:"content"`
	SenderId   UserId    `json:"sender_id"`
	ReceiverId UserId    `json:"receiver_id"`
	Anonymous  bool      `json:"anonymous"`
	CreatedAt  time.Time `json:"created_at"`
	Likes      int       `json:"likes"`
	Replies    []Message `json:"replies,omitempty"`
}

type MessageCreationData struct {
	Content    MsgText
	ReceiverId UserId
	Anonymous  bool
}

type ReplyCreationData struct {
	ParentId  MsgId
	Content   MsgText
	Anonymous bool
}

type MessageScope string

const (
	ScopeAll       MessageScope = "all"
	ScopeSent      MessageScope = "sent"
	ScopeReceived  MessageScope = "received"
	ScopeAnonymous MessageScope = "anonymous"
)

func (s MessageScope) Valid() bool {
	switch s {
	case ScopeAll, ScopeSent, ScopeReceived, ScopeAnonymous:
		return true
	}
	return false
}

type MessageFilter struct {
	Query string
	Scope MessageScope
}

// Matches applies the filter to a top-level message as seen by viewer.
// The sent and received scopes never match without a viewer.
func (f MessageFilter) Matches(m *Message, viewer *User) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(m.Content), strings.ToLower(f.Query)) {
		return false
	}
	switch f.Scope {
	case ScopeSent:
		return viewer != nil && m.SenderId == viewer.Id
	case ScopeReceived:
		return viewer != nil && m.ReceiverId == viewer.Id
	case ScopeAnonymous:
		return m.Anonymous
	default:
		return true
	}
}
