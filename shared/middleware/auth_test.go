package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whisper-dev/whisper/shared/domain"
)

type mockSession struct {
	user *domain.User
}

func (m *mockSession) Current() *domain.User {
	return m.user
}

func TestAuth(t *testing.T) {
	student := &domain.User{Id: "1", Username: "student1", Role: domain.RoleStudent}
	owner := &domain.User{Id: "3", Username: "owner1", Role: domain.RoleOwner}

	tests := []struct {
		name           string
		session        *domain.User
		expectedStatus int
	}{
		{name: "Active session", session: student, expectedStatus: http.StatusOK},
		{name: "Moderator session", session: owner, expectedStatus: http.StatusOK},
		{name: "No session", session: nil, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuth(&mockSession{user: tt.session}).NeedAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user := GetUserFromContext(r)
				require.NotNil(t, user, "Auth should always propagate user thru context")
				assert.Equal(t, tt.session.Id, user.Id)
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest("GET", "http://example.com", nil))
			assert.Equal(t, tt.expectedStatus, rr.Code, "handler returned wrong status code")
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Run("with session", func(t *testing.T) {
		user := &domain.User{Id: "2", Role: domain.RoleAdmin}
		var seen *domain.User
		handler := NewAuth(&mockSession{user: user}).OptionalAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetUserFromContext(r)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, user, seen)
	})

	t.Run("without session", func(t *testing.T) {
		called := false
		handler := NewAuth(&mockSession{}).OptionalAuth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			assert.Nil(t, GetUserFromContext(r))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestGetUserFromContext(t *testing.T) {
	t.Run("no user in context", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		assert.Nil(t, GetUserFromContext(req))
	})

	t.Run("user in context", func(t *testing.T) {
		user := &domain.User{Id: "1", Username: "student1"}
		req := httptest.NewRequest("GET", "/", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserClaimsKey, user))

		assert.Equal(t, user, GetUserFromContext(req))
	})
}
