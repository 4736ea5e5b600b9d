package handler

import (
	"github.com/whisper-dev/whisper/shared/api"
	"github.com/whisper-dev/whisper/shared/domain"
)

// messageView renders a top-level message for viewer.
func (h *Handler) messageView(m domain.Message, viewer *domain.User) api.MessageView {
	return h.renderView(m, viewer, false)
}

// standaloneView renders a message fetched on its own, which may be a reply.
func (h *Handler) standaloneView(m domain.Message, viewer *domain.User) api.MessageView {
	return h.renderView(m, viewer, h.hasAnonymousParent(m.Id))
}

// renderView hides sender details of anonymous messages. A reply is addressed
// to its parent's sender, so under an anonymous parent the receiver is hidden
// too, except from the receiver themselves.
func (h *Handler) renderView(m domain.Message, viewer *domain.User, anonymousParent bool) api.MessageView {
	v := api.MessageView{
		Id:          m.Id,
		Content:     m.Content,
		ContentHTML: h.renderer.Render(m.Content),
		Anonymous:   m.Anonymous,
		CreatedAt:   m.CreatedAt,
		Likes:       m.Likes,
		Replies:     make([]api.MessageView, 0, len(m.Replies)),
	}

	if !m.Anonymous {
		v.SenderId = m.SenderId
		if sender, ok := h.identity.User(m.SenderId); ok {
			v.SenderName = sender.DisplayName
		}
	}

	if !anonymousParent || (viewer != nil && viewer.Id == m.ReceiverId) {
		v.ReceiverId = m.ReceiverId
		if m.ReceiverId == domain.ReceiverAll {
			v.ReceiverName = h.t("everyone")
		} else if receiver, ok := h.identity.User(m.ReceiverId); ok {
			v.ReceiverName = receiver.DisplayName
		}
	}

	if viewer != nil {
		v.Mine = m.SenderId == viewer.Id
		v.CanDelete = v.Mine || domain.CanModerate(viewer.Role)
	}

	for _, reply := range m.Replies {
		v.Replies = append(v.Replies, h.renderView(reply, viewer, m.Anonymous))
	}
	return v
}

func (h *Handler) hasAnonymousParent(id domain.MsgId) bool {
	for _, m := range h.message.List(nil, domain.MessageFilter{Scope: domain.ScopeAll}) {
		if m.FindReply(id) != -1 {
			return m.Anonymous
		}
	}
	return false
}
