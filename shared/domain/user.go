package domain

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
	RoleOwner   Role = "owner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// CanModerate reports whether the role may delete other users' messages.
func CanModerate(r Role) bool {
	return r == RoleAdmin || r == RoleOwner
}

type User struct {
	Id          UserId    `json:"id"`
	Username    Username  `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        Role      `json:"role"`
	Avatar      string    `json:"avatar,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RegistrationData struct {
	Username    Username
	DisplayName string
	Password    string
	Role        Role
}
