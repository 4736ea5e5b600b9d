package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/shared/domain"
)

// MockSessionStorage is an in-memory SessionStorage with optional failure hooks.
type MockSessionStorage struct {
	data       map[string]string
	SetFunc    func(key, value string) error
	RemoveFunc func(key string) error
}

func NewMockSessionStorage() *MockSessionStorage {
	return &MockSessionStorage{data: map[string]string{}}
}

func (m *MockSessionStorage) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *MockSessionStorage) Set(key, value string) error {
	if m.SetFunc != nil {
		if err := m.SetFunc(key, value); err != nil {
			return err
		}
	}
	m.data[key] = value
	return nil
}

func (m *MockSessionStorage) Remove(key string) error {
	if m.RemoveFunc != nil {
		if err := m.RemoveFunc(key); err != nil {
			return err
		}
	}
	delete(m.data, key)
	return nil
}

// MockSessionCodec encodes a user as "token:<id>" and decodes from a lookup table.
type MockSessionCodec struct {
	NewTokenFunc      func(user domain.User) (string, error)
	UserFromTokenFunc func(token string) (*domain.User, error)
	issued            map[string]domain.User
}

func NewMockSessionCodec() *MockSessionCodec {
	return &MockSessionCodec{issued: map[string]domain.User{}}
}

func (m *MockSessionCodec) NewToken(user domain.User) (string, error) {
	if m.NewTokenFunc != nil {
		return m.NewTokenFunc(user)
	}
	token := "token:" + user.Id
	m.issued[token] = user
	return token, nil
}

func (m *MockSessionCodec) UserFromToken(token string) (*domain.User, error) {
	if m.UserFromTokenFunc != nil {
		return m.UserFromTokenFunc(token)
	}
	u, ok := m.issued[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return &u, nil
}

type MockMessageValidator struct {
	TextFunc func(text string) error
}

func (m *MockMessageValidator) Text(text string) error {
	if m.TextFunc != nil {
		return m.TextFunc(text)
	}
	return nil
}

type MockAlerter struct {
	mu     sync.Mutex
	Alerts []alert.Alert
}

func (m *MockAlerter) Push(a alert.Alert) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Alerts = append(m.Alerts, a)
}

// sequentialIds returns a generator yielding prefix-1, prefix-2, ...
func sequentialIds(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
