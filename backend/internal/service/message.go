package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/whisper-dev/whisper/shared/domain"
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/logger"
)

type MessageService interface {
	List(viewer *domain.User, filter domain.MessageFilter) []domain.Message
	Get(id domain.MsgId) (domain.Message, error)
	Send(actor *domain.User, data domain.MessageCreationData) (domain.Message, error)
	Reply(actor *domain.User, data domain.ReplyCreationData) (domain.Message, error)
	Like(actor *domain.User, id domain.MsgId) (domain.Message, error)
	Delete(actor *domain.User, id domain.MsgId) error
	Loading() bool
}

type MessageValidator interface {
	Text(text string) error
}

// Message owns the ordered list of top-level messages (newest first) and
// every reply list reachable from it. Nothing outside this type holds a
// reference into the list: reads return deep copies.
type Message struct {
	mu        sync.RWMutex
	messages  []domain.Message
	validator MessageValidator
	readyAt   time.Time
	now       func() time.Time
	newId     func() domain.MsgId
}

func NewMessage(initial []domain.Message, validator MessageValidator, loadDelay time.Duration) *Message {
	messages := make([]domain.Message, len(initial))
	for i := range initial {
		messages[i] = initial[i].Clone()
	}
	return &Message{
		messages:  messages,
		validator: validator,
		readyAt:   time.Now().Add(loadDelay),
		now:       time.Now,
		newId:     uuid.NewString,
	}
}

// Loading is true until the configured load delay has passed.
func (m *Message) Loading() bool {
	return m.now().Before(m.readyAt)
}

func (m *Message) List(viewer *domain.User, filter domain.MessageFilter) []domain.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Message, 0, len(m.messages))
	for i := range m.messages {
		if filter.Matches(&m.messages[i], viewer) {
			out = append(out, m.messages[i].Clone())
		}
	}
	return out
}

// Get finds a top-level message or a reply.
func (m *Message) Get(id domain.MsgId) (domain.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	msg := m.find(id)
	if msg == nil {
		return domain.Message{}, errors.NotFound("Message not found")
	}
	return msg.Clone(), nil
}

func (m *Message) Send(actor *domain.User, data domain.MessageCreationData) (domain.Message, error) {
	if actor == nil {
		return domain.Message{}, errors.LoginRequired("send messages")
	}
	content, err := m.content(data.Content)
	if err != nil {
		return domain.Message{}, err
	}
	receiver := data.ReceiverId
	if receiver == "" {
		receiver = domain.ReceiverAll
	}

	msg := domain.Message{
		Id:         m.newId(),
		Content:    content,
		SenderId:   actor.Id,
		ReceiverId: receiver,
		Anonymous:  data.Anonymous,
		CreatedAt:  m.now(),
	}

	m.mu.Lock()
	m.messages = append([]domain.Message{msg}, m.messages...)
	m.mu.Unlock()

	messagesCreated.WithLabelValues("message", strconv.FormatBool(msg.Anonymous)).Inc()
	logger.Log.Info("message sent", "message_id", msg.Id, "user_id", actor.Id, "receiver_id", receiver)
	return msg.Clone(), nil
}

// Reply appends to the replies of a top-level message; replies cannot be replied to.
func (m *Message) Reply(actor *domain.User, data domain.ReplyCreationData) (domain.Message, error) {
	if actor == nil {
		return domain.Message{}, errors.LoginRequired("reply")
	}
	content, err := m.content(data.Content)
	if err != nil {
		return domain.Message{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.findTop(data.ParentId)
	if idx == -1 {
		logger.Log.Warn("reply rejected, parent not found", "parent_id", data.ParentId, "user_id", actor.Id)
		return domain.Message{}, errors.NotFound("Message not found")
	}
	parent := &m.messages[idx]

	reply := domain.Message{
		Id:         m.newId(),
		Content:    content,
		SenderId:   actor.Id,
		ReceiverId: parent.SenderId,
		Anonymous:  data.Anonymous,
		CreatedAt:  m.now(),
	}
	parent.Replies = append(parent.Replies, reply)

	messagesCreated.WithLabelValues("reply", strconv.FormatBool(reply.Anonymous)).Inc()
	logger.Log.Info("reply sent", "message_id", reply.Id, "parent_id", parent.Id, "user_id", actor.Id)
	return reply.Clone(), nil
}

// Like adds exactly one like to the first message with id, searching
// top-level messages before replies.
func (m *Message) Like(actor *domain.User, id domain.MsgId) (domain.Message, error) {
	if actor == nil {
		return domain.Message{}, errors.LoginRequired("like messages")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	msg := m.find(id)
	if msg == nil {
		logger.Log.Warn("like rejected, message not found", "message_id", id, "user_id", actor.Id)
		return domain.Message{}, errors.NotFound("Message not found")
	}
	msg.Likes++

	messageLikes.Inc()
	logger.Log.Debug("message liked", "message_id", id, "user_id", actor.Id, "likes", msg.Likes)
	return msg.Clone(), nil
}

// Delete removes a message the actor sent, or any message when the actor
// can moderate. Top-level messages are checked first, then every reply list.
func (m *Message) Delete(actor *domain.User, id domain.MsgId) error {
	if actor == nil {
		return errors.LoginRequired("delete messages")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	if idx := m.findTop(id); idx != -1 {
		found = true
		if canDelete(actor, &m.messages[idx]) {
			m.messages = append(m.messages[:idx], m.messages[idx+1:]...)
			messagesDeleted.WithLabelValues("top").Inc()
			logger.Log.Info("message deleted", "message_id", id, "user_id", actor.Id)
			return nil
		}
	}

	for i := range m.messages {
		parent := &m.messages[i]
		ri := parent.FindReply(id)
		if ri == -1 {
			continue
		}
		found = true
		if canDelete(actor, &parent.Replies[ri]) {
			parent.Replies = append(parent.Replies[:ri], parent.Replies[ri+1:]...)
			messagesDeleted.WithLabelValues("reply").Inc()
			logger.Log.Info("reply deleted", "message_id", id, "parent_id", parent.Id, "user_id", actor.Id)
			return nil
		}
	}

	if found {
		logger.Log.Warn("delete rejected, not permitted", "message_id", id, "user_id", actor.Id)
		return errors.Forbidden("You do not have permission to delete this message")
	}
	return errors.NotFound("Message not found")
}

func canDelete(actor *domain.User, msg *domain.Message) bool {
	return msg.SenderId == actor.Id || domain.CanModerate(actor.Role)
}

// content is stored verbatim; HTML is only ever produced by the renderer.
func (m *Message) content(raw domain.MsgText) (domain.MsgText, error) {
	if err := m.validator.Text(raw); err != nil {
		return "", err
	}
	return raw, nil
}

// caller holds mu
func (m *Message) findTop(id domain.MsgId) int {
	for i := range m.messages {
		if m.messages[i].Id == id {
			return i
		}
	}
	return -1
}

// find returns a pointer into the store; caller holds mu.
func (m *Message) find(id domain.MsgId) *domain.Message {
	if idx := m.findTop(id); idx != -1 {
		return &m.messages[idx]
	}
	for i := range m.messages {
		if ri := m.messages[i].FindReply(id); ri != -1 {
			return &m.messages[i].Replies[ri]
		}
	}
	return nil
}
