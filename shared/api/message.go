package api

import "time"

// Request DTOs

type CreateMessageRequest struct {
	Content    string `json:"content" validate:"required"`
	ReceiverId string `json:"receiver_id,omitempty"`
	Anonymous  bool   `json:"anonymous,omitempty"`
}

type CreateReplyRequest struct {
	Content   string `json:"content" validate:"required"`
	Anonymous bool   `json:"anonymous,omitempty"`
}

// Response DTOs

// MessageView is a message as one viewer sees it. Sender fields are
// empty for anonymous messages, receiver fields on replies to them.
type MessageView struct {
	Id           string        `json:"id"`
	Content      string        `json:"content"`
	ContentHTML  string        `json:"content_html"`
	SenderId     string        `json:"sender_id,omitempty"`
	SenderName   string        `json:"sender_name,omitempty"`
	ReceiverId   string        `json:"receiver_id,omitempty"`
	ReceiverName string        `json:"receiver_name,omitempty"`
	Anonymous    bool          `json:"anonymous"`
	CreatedAt    time.Time     `json:"created_at"`
	Likes        int           `json:"likes"`
	Replies      []MessageView `json:"replies"`
	Mine         bool          `json:"mine"`
	CanDelete    bool          `json:"can_delete"`
}

type MessageListResponse struct {
	Messages []MessageView `json:"messages"`
	Loading  bool          `json:"loading"`
}

type MessageResponse struct {
	MessageView
}

type LikeResponse struct {
	Id    string `json:"id"`
	Likes int    `json:"likes"`
}
