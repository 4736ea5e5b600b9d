package middleware

import (
	"errors"
	"net/http"

	"github.com/whisper-dev/whisper/shared/domain"
	"github.com/whisper-dev/whisper/shared/logger"
	"github.com/whisper-dev/whisper/shared/middleware/ratelimiter"
	"github.com/whisper-dev/whisper/shared/utils"
)

// RateLimit limits requests per identity. Moderators are never limited.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return RateLimitWithHandler(rl, getIdentity, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Rate limit exceeded, try again later", http.StatusTooManyRequests)
	})
}

// RateLimitWithHandler is RateLimit with a custom response for rejected requests.
func RateLimitWithHandler(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error), onLimit http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := GetUserFromContext(r); user != nil && domain.CanModerate(user.Role) {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				logger.Log.Warn("rate limit exceeded", "identity", identity, "path", r.URL.Path)
				onLimit(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GlobalRateLimit(rl *ratelimiter.UserRateLimiter) func(http.Handler) http.Handler {
	return RateLimit(rl, func(r *http.Request) (string, error) { return "global", nil })
}

// Possible if user was authorized with previous middleware
func GetUserIDFromContext(r *http.Request) (string, error) {
	user := GetUserFromContext(r)
	if user == nil {
		return "", errors.New("Can't get user id")
	}
	return "user_" + user.Id, nil
}

// GetIP extracts the real client IP from RemoteAddr.
// Does NOT trust X-Real-IP or X-Forwarded-For headers.
func GetIP(r *http.Request) (string, error) {
	return utils.GetIP(r)
}
