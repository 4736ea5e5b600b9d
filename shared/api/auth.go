package api

import "github.com/whisper-dev/whisper/shared/domain"

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=student admin owner"`
}

// Response DTOs

type UserResponse struct {
	domain.User
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    domain.User `json:"user"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

// Recipient is one entry of the compose form's recipient picker.
type Recipient struct {
	Id          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type RecipientsResponse struct {
	Recipients []Recipient `json:"recipients"`
}
