package domain

type (
	UserId   = string
	Username = string

	MsgId   = string
	MsgText = string

	NotificationId = string
)

// ReceiverAll addresses a message to everyone on the platform.
const ReceiverAll UserId = "all"
