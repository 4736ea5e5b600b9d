package service

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/whisper-dev/whisper/shared/domain"
	"github.com/whisper-dev/whisper/shared/errors"
	"github.com/whisper-dev/whisper/shared/logger"
)

// Local storage keys.
const (
	SessionStorageKey  = "whisper_user"
	LanguageStorageKey = "language"
)

type IdentityService interface {
	Login(username domain.Username, password string) (domain.User, error)
	Register(data domain.RegistrationData) (domain.User, error)
	Logout() error
	Current() *domain.User
	Restore()

	User(id domain.UserId) (domain.User, bool)
	Directory() []domain.User
}

// SessionStorage is the key/value store the active session and settings persist to.
type SessionStorage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// SessionCodec serializes the current-user record for SessionStorage.
type SessionCodec interface {
	NewToken(user domain.User) (string, error)
	UserFromToken(token string) (*domain.User, error)
}

// Identity holds the user directory and the single active session.
type Identity struct {
	mu        sync.RWMutex
	directory []domain.User
	current   *domain.User
	storage   SessionStorage
	codec     SessionCodec
	now       func() time.Time
}

func NewIdentity(directory []domain.User, storage SessionStorage, codec SessionCodec) *Identity {
	dir := make([]domain.User, len(directory))
	copy(dir, directory)
	return &Identity{
		directory: dir,
		storage:   storage,
		codec:     codec,
		now:       time.Now,
	}
}

// Login accepts any password for a known username.
func (i *Identity) Login(username domain.Username, password string) (domain.User, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	idx := i.findUsername(username)
	if idx == -1 {
		logger.Log.Warn("login rejected", "username", username)
		return domain.User{}, errors.Unauthorized("Invalid credentials")
	}
	user := i.directory[idx]

	if err := i.persist(user); err != nil {
		return domain.User{}, err
	}
	i.current = &user

	logger.Log.Info("user logged in", "user_id", user.Id)
	return user, nil
}

func (i *Identity) Register(data domain.RegistrationData) (domain.User, error) {
	username := strings.TrimSpace(data.Username)
	displayName := strings.TrimSpace(data.DisplayName)
	if username == "" || displayName == "" {
		return domain.User{}, errors.BadRequest("Username and display name are required")
	}
	if !data.Role.Valid() {
		return domain.User{}, errors.BadRequest("Unknown role")
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if i.findUsername(username) != -1 {
		logger.Log.Warn("registration rejected, username taken", "username", username)
		return domain.User{}, errors.Conflict("Username already taken")
	}

	user := domain.User{
		Id:          strconv.Itoa(len(i.directory) + 1),
		Username:    username,
		DisplayName: displayName,
		Role:        data.Role,
		CreatedAt:   i.now(),
	}
	if err := i.persist(user); err != nil {
		return domain.User{}, err
	}
	i.directory = append(i.directory, user)
	i.current = &user

	logger.Log.Info("user registered", "user_id", user.Id, "role", user.Role)
	return user, nil
}

func (i *Identity) Logout() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.current != nil {
		logger.Log.Info("user logged out", "user_id", i.current.Id)
	}
	i.current = nil
	if err := i.storage.Remove(SessionStorageKey); err != nil {
		logger.Log.Error("failed to remove persisted session", "error", err)
		return err
	}
	return nil
}

// Current returns a copy of the active user, nil when logged out.
func (i *Identity) Current() *domain.User {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if i.current == nil {
		return nil
	}
	u := *i.current
	return &u
}

// Restore loads the persisted session. An unreadable record is discarded.
func (i *Identity) Restore() {
	token, ok := i.storage.Get(SessionStorageKey)
	if !ok || token == "" {
		return
	}

	user, err := i.codec.UserFromToken(token)
	if err != nil {
		logger.Log.Error("failed to parse stored user", "error", err)
		if err := i.storage.Remove(SessionStorageKey); err != nil {
			logger.Log.Error("failed to remove persisted session", "error", err)
		}
		return
	}

	i.mu.Lock()
	i.current = user
	i.mu.Unlock()
	logger.Log.Info("session restored", "user_id", user.Id)
}

func (i *Identity) User(id domain.UserId) (domain.User, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, u := range i.directory {
		if u.Id == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (i *Identity) Directory() []domain.User {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]domain.User, len(i.directory))
	copy(out, i.directory)
	return out
}

// caller holds mu
func (i *Identity) findUsername(username domain.Username) int {
	for idx, u := range i.directory {
		if u.Username == username {
			return idx
		}
	}
	return -1
}

func (i *Identity) persist(user domain.User) error {
	token, err := i.codec.NewToken(user)
	if err != nil {
		return err
	}
	if err := i.storage.Set(SessionStorageKey, token); err != nil {
		logger.Log.Error("failed to persist session", "user_id", user.Id, "error", err)
		return err
	}
	return nil
}
