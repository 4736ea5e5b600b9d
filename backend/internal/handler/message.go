package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/api"
	"github.com/whisper-dev/whisper/shared/domain"
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/logger"
	mw "github.com/whisper-dev/whisper/shared/middleware"
	"github.com/whisper-dev/whisper/shared/utils"
)

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.MessageFilter{
		Query: strings.TrimSpace(query.Get("q")),
		Scope: domain.MessageScope(query.Get("filter")),
	}
	if filter.Scope == "" {
		filter.Scope = domain.ScopeAll
	}
	if !filter.Scope.Valid() {
		h.fail(w, errors.BadRequest("Unknown filter"))
		return
	}

	viewer := mw.GetUserFromContext(r)
	messages := h.message.List(viewer, filter)

	views := make([]api.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, h.messageView(m, viewer))
	}
	writeJSON(w, api.MessageListResponse{Messages: views, Loading: h.message.Loading()})
}

func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := h.message.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, api.MessageResponse{MessageView: h.standaloneView(msg, mw.GetUserFromContext(r))})
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	var body api.CreateMessageRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		h.fail(w, err)
		return
	}
	if body.ReceiverId != "" && body.ReceiverId != domain.ReceiverAll {
		if _, ok := h.identity.User(body.ReceiverId); !ok {
			h.fail(w, errors.BadRequest("Unknown recipient"))
			return
		}
	}

	msg, err := h.message.Send(user, domain.MessageCreationData{
		Content:    body.Content,
		ReceiverId: body.ReceiverId,
		Anonymous:  body.Anonymous,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, "messageSent")
	utils.WriteJSON(w, http.StatusCreated, api.MessageResponse{MessageView: h.messageView(msg, user)})
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		h.fail(w, err)
		return
	}

	reply, err := h.message.Reply(user, domain.ReplyCreationData{
		ParentId:  chi.URLParam(r, "id"),
		Content:   body.Content,
		Anonymous: body.Anonymous,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, "replySent")
	h.notifyActivity(user, reply.ReceiverId, domain.NotificationReply, "newReply", reply.Id)
	utils.WriteJSON(w, http.StatusCreated, api.MessageResponse{MessageView: h.standaloneView(reply, user)})
}

func (h *Handler) LikeMessage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	msg, err := h.message.Like(user, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, "messageLiked")
	h.notifyActivity(user, msg.SenderId, domain.NotificationLike, "newLike", msg.Id)
	writeJSON(w, api.LikeResponse{Id: msg.Id, Likes: msg.Likes})
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	id := chi.URLParam(r, "id")

	// top-level and reply deletions are announced differently
	key := "messageDeleted"
	if msg, err := h.message.Get(id); err == nil && !h.isTopLevel(msg.Id) {
		key = "replyDeleted"
	}

	if err := h.message.Delete(user, id); err != nil {
		h.fail(w, err)
		return
	}

	h.announce(alert.Success, key)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) isTopLevel(id domain.MsgId) bool {
	for _, m := range h.message.List(nil, domain.MessageFilter{Scope: domain.ScopeAll}) {
		if m.Id == id {
			return true
		}
	}
	return false
}

// notifyActivity tells recipient about a reply or like when activity
// notifications are enabled. Acting on your own message notifies nobody.
func (h *Handler) notifyActivity(actor *domain.User, recipient domain.UserId, kind domain.NotificationType, key string, msgId domain.MsgId) {
	if !h.cfg.Public.NotifyOnActivity || actor == nil || recipient == "" || recipient == actor.Id || recipient == domain.ReceiverAll {
		return
	}

	_, err := h.notification.Add(actor, domain.NotificationCreationData{
		UserId:  recipient,
		Message: h.t(key),
		Link:    "/messages/" + msgId,
		Type:    kind,
	})
	if err != nil {
		logger.Log.Error("failed to add activity notification", "user_id", recipient, "type", kind, "error", err)
	}
}
