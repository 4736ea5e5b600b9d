package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/config"
	"github.com/whisper-dev/whisper/shared/domain"
	"github.com/whisper-dev/whisper/shared/i18n"
	mw "github.com/whisper-dev/whisper/shared/middleware"
)

type MockIdentityService struct {
	MockLogin     func(username domain.Username, password string) (domain.User, error)
	MockRegister  func(data domain.RegistrationData) (domain.User, error)
	MockLogout    func() error
	MockCurrent   func() *domain.User
	MockUser      func(id domain.UserId) (domain.User, bool)
	MockDirectory func() []domain.User
}

func (m *MockIdentityService) Login(username domain.Username, password string) (domain.User, error) {
	if m.MockLogin != nil {
		return m.MockLogin(username, password)
	}
	return domain.User{}, nil
}

func (m *MockIdentityService) Register(data domain.RegistrationData) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(data)
	}
	return domain.User{}, nil
}

func (m *MockIdentityService) Logout() error {
	if m.MockLogout != nil {
		return m.MockLogout()
	}
	return nil
}

func (m *MockIdentityService) Current() *domain.User {
	if m.MockCurrent != nil {
		return m.MockCurrent()
	}
	return nil
}

func (m *MockIdentityService) Restore() {}

func (m *MockIdentityService) User(id domain.UserId) (domain.User, bool) {
	if m.MockUser != nil {
		return m.MockUser(id)
	}
	for _, u := range testDirectory {
		if u.Id == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (m *MockIdentityService) Directory() []domain.User {
	if m.MockDirectory != nil {
		return m.MockDirectory()
	}
	return testDirectory
}

type MockMessageService struct {
	MockList    func(viewer *domain.User, filter domain.MessageFilter) []domain.Message
	MockGet     func(id domain.MsgId) (domain.Message, error)
	MockSend    func(actor *domain.User, data domain.MessageCreationData) (domain.Message, error)
	MockReply   func(actor *domain.User, data domain.ReplyCreationData) (domain.Message, error)
	MockLike    func(actor *domain.User, id domain.MsgId) (domain.Message, error)
	MockDelete  func(actor *domain.User, id domain.MsgId) error
	MockLoading func() bool
}

func (m *MockMessageService) List(viewer *domain.User, filter domain.MessageFilter) []domain.Message {
	if m.MockList != nil {
		return m.MockList(viewer, filter)
	}
	return nil
}

func (m *MockMessageService) Get(id domain.MsgId) (domain.Message, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Send(actor *domain.User, data domain.MessageCreationData) (domain.Message, error) {
	if m.MockSend != nil {
		return m.MockSend(actor, data)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Reply(actor *domain.User, data domain.ReplyCreationData) (domain.Message, error) {
	if m.MockReply != nil {
		return m.MockReply(actor, data)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Like(actor *domain.User, id domain.MsgId) (domain.Message, error) {
	if m.MockLike != nil {
		return m.MockLike(actor, id)
	}
	return domain.Message{}, nil
}

func (m *MockMessageService) Delete(actor *domain.User, id domain.MsgId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, id)
	}
	return nil
}

func (m *MockMessageService) Loading() bool {
	if m.MockLoading != nil {
		return m.MockLoading()
	}
	return false
}

type MockNotificationService struct {
	MockAdd           func(viewer *domain.User, data domain.NotificationCreationData) (domain.Notification, error)
	MockMarkAsRead    func(id domain.NotificationId)
	MockView          func(id domain.NotificationId) (string, error)
	MockMarkAllAsRead func(actor *domain.User) error
	MockClearAll      func(actor *domain.User) error
	MockList          func(viewer *domain.User) []domain.Notification
	MockUnreadCount   func(viewer *domain.User) int
	MockLoading       func() bool
}

func (m *MockNotificationService) Add(viewer *domain.User, data domain.NotificationCreationData) (domain.Notification, error) {
	if m.MockAdd != nil {
		return m.MockAdd(viewer, data)
	}
	return domain.Notification{}, nil
}

func (m *MockNotificationService) MarkAsRead(id domain.NotificationId) {
	if m.MockMarkAsRead != nil {
		m.MockMarkAsRead(id)
	}
}

func (m *MockNotificationService) View(id domain.NotificationId) (string, error) {
	if m.MockView != nil {
		return m.MockView(id)
	}
	return "", nil
}

func (m *MockNotificationService) MarkAllAsRead(actor *domain.User) error {
	if m.MockMarkAllAsRead != nil {
		return m.MockMarkAllAsRead(actor)
	}
	return nil
}

func (m *MockNotificationService) ClearAll(actor *domain.User) error {
	if m.MockClearAll != nil {
		return m.MockClearAll(actor)
	}
	return nil
}

func (m *MockNotificationService) List(viewer *domain.User) []domain.Notification {
	if m.MockList != nil {
		return m.MockList(viewer)
	}
	return []domain.Notification{}
}

func (m *MockNotificationService) UnreadCount(viewer *domain.User) int {
	if m.MockUnreadCount != nil {
		return m.MockUnreadCount(viewer)
	}
	return 0
}

func (m *MockNotificationService) Loading() bool {
	if m.MockLoading != nil {
		return m.MockLoading()
	}
	return false
}

type MockLanguageService struct {
	lang    i18n.Language
	MockSet func(lang string) (i18n.Language, error)
}

func (m *MockLanguageService) Get() i18n.Language {
	if m.lang == "" {
		return i18n.English
	}
	return m.lang
}

func (m *MockLanguageService) Set(lang string) (i18n.Language, error) {
	if m.MockSet != nil {
		return m.MockSet(lang)
	}
	parsed, _ := i18n.ParseLanguage(lang)
	m.lang = parsed
	return parsed, nil
}

type MockAlertFeed struct {
	pending []alert.Alert
}

func (m *MockAlertFeed) Push(a alert.Alert) {
	m.pending = append(m.pending, a)
}

func (m *MockAlertFeed) Drain() []alert.Alert {
	out := m.pending
	if out == nil {
		out = []alert.Alert{}
	}
	m.pending = nil
	return out
}

// MockRenderer wraps text in <p> so tests can tell rendered output apart.
type MockRenderer struct{}

func (MockRenderer) Render(text string) string {
	return "<p>" + text + "</p>"
}

var testDirectory = []domain.User{
	{Id: "1", Username: "student1", DisplayName: "Student User", Role: domain.RoleStudent},
	{Id: "2", Username: "admin1", DisplayName: "Admin User", Role: domain.RoleAdmin},
	{Id: "3", Username: "owner1", DisplayName: "Owner User", Role: domain.RoleOwner},
}

var (
	studentUser = &testDirectory[0]
	adminUser   = &testDirectory[1]
)

type testDeps struct {
	identity     *MockIdentityService
	message      *MockMessageService
	notification *MockNotificationService
	language     *MockLanguageService
	alerts       *MockAlertFeed
	cfg          *config.Config
}

func newTestDeps() *testDeps {
	return &testDeps{
		identity:     &MockIdentityService{},
		message:      &MockMessageService{},
		notification: &MockNotificationService{},
		language:     &MockLanguageService{},
		alerts:       &MockAlertFeed{},
		cfg:          config.Default(),
	}
}

func (d *testDeps) handler() *Handler {
	return New(d.identity, d.message, d.notification, d.language, d.alerts, MockRenderer{}, d.cfg)
}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), mw.UserClaimsKey, user))
	}
	return req
}
