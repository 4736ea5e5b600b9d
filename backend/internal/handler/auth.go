package handler

import (
	"net/http"

	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/api"
	"github.com/whisper-dev/whisper/shared/domain"
	mw "github.com/whisper-dev/whisper/shared/middleware"
	"github.com/whisper-dev/whisper/shared/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		h.fail(w, err)
		return
	}

	user, err := h.identity.Login(body.Username, body.Password)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, "loginSuccess")
	writeJSON(w, api.LoginResponse{Message: "Welcome back, " + user.DisplayName + "!", User: user})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		h.fail(w, err)
		return
	}

	user, err := h.identity.Register(domain.RegistrationData{
		Username:    body.Username,
		DisplayName: body.DisplayName,
		Password:    body.Password,
		Role:        domain.Role(body.Role),
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, "registerSuccess")
	utils.WriteJSON(w, http.StatusCreated, api.UserResponse{User: user})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.identity.Logout(); err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Info, "logoutSuccess")
	writeJSON(w, api.LogoutResponse{Message: "You have been logged out"})
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, api.UserResponse{User: *user})
}

// Recipients lists everyone the current user can write to: every other
// directory user, then "all".
func (h *Handler) Recipients(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	directory := h.identity.Directory()
	recipients := make([]api.Recipient, 0, len(directory)+1)
	for _, u := range directory {
		if user != nil && u.Id == user.Id {
			continue
		}
		recipients = append(recipients, api.Recipient{Id: u.Id, DisplayName: u.DisplayName})
	}
	recipients = append(recipients, api.Recipient{Id: domain.ReceiverAll, DisplayName: h.t("everyone")})

	writeJSON(w, api.RecipientsResponse{Recipients: recipients})
}
