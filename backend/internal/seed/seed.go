// Package seed holds the demo directory, messages and notifications the
// stores start from.
package seed

import (
	"time"

	"github.com/whisper-dev/whisper/shared/domain"
)

func Users(now time.Time) []domain.User {
	return []domain.User{
		{Id: "1", Username: "student1", DisplayName: "Student User", Role: domain.RoleStudent, CreatedAt: now},
		{Id: "2", Username: "admin1", DisplayName: "Admin User", Role: domain.RoleAdmin, CreatedAt: now},
		{Id: "3", Username: "owner1", DisplayName: "Owner User", Role: domain.RoleOwner, CreatedAt: now},
	}
}

// Messages returns the initial list in display order; messages
// sent afterwards are inserted in front of it.
func Messages(now time.Time) []domain.Message {
	return []domain.Message{
		{
			Id:         "1",
			Content:    "Welcome to Whisper! The anonymous messaging platform.",
			SenderId:   "3",
			ReceiverId: domain.ReceiverAll,
			CreatedAt:  now.Add(-48 * time.Hour),
			Likes:      5,
		},
		{
			Id:         "2",
			Content:    "Feel free to send messages anonymously to anyone on the platform.",
			SenderId:   "2",
			ReceiverId: domain.ReceiverAll,
			CreatedAt:  now.Add(-24 * time.Hour),
			Likes:      3,
		},
		{
			Id:         "3",
			Content:    "How do I use this platform?",
			SenderId:   "1",
			ReceiverId: "2",
			Anonymous:  true,
			CreatedAt:  now.Add(-time.Hour),
			Replies: []domain.Message{
				{
					Id:         "4",
					Content:    "Just select a recipient and send a message. You can choose to remain anonymous!",
					SenderId:   "2",
					ReceiverId: "1",
					CreatedAt:  now.Add(-30 * time.Minute),
					Likes:      1,
				},
			},
		},
	}
}

func Notifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{
			Id:        "1",
			UserId:    "1",
			Message:   "Welcome to Whisper!",
			CreatedAt: now.Add(-time.Hour),
			Type:      domain.NotificationSystem,
		},
		{
			Id:        "2",
			UserId:    "1",
			Message:   "You have a new reply from Admin",
			CreatedAt: now.Add(-30 * time.Minute),
			Type:      domain.NotificationReply,
			Link:      "/messages/4",
		},
	}
}
