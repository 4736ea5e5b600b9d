package middleware

import (
	"context"
	"net/http"

	"github.com/whisper-dev/whisper/shared/domain"
)

// SessionSource reports the user of the active session, nil when logged out.
type SessionSource interface {
	Current() *domain.User
}

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	session SessionSource
}

func NewAuth(session SessionSource) *Auth {
	return &Auth{session: session}
}

// NeedAuth returns middleware that requires an active session
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := a.session.Current()
			if user == nil {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth populates the user context when a session is active, but doesn't require one
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := a.session.Current(); user != nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), UserClaimsKey, user)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
