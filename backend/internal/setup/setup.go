package setup

import (
	"time"

	"github.com/whisper-dev/whisper/backend/internal/alert"
	"github.com/whisper-dev/whisper/backend/internal/handler"
	"github.com/whisper-dev/whisper/backend/internal/seed"
	"github.com/whisper-dev/whisper/backend/internal/service"
	"github.com/whisper-dev/whisper/backend/internal/storage/local"
	"github.com/whisper-dev/whisper/backend/internal/utils"
	"github.com/whisper-dev/whisper/shared/config"
	"github.com/whisper-dev/whisper/shared/jwt"
	"github.com/whisper-dev/whisper/shared/markdown"
	mw "github.com/whisper-dev/whisper/shared/middleware"
	rl "github.com/whisper-dev/whisper/shared/middleware/ratelimiter"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *local.Storage
	Identity       *service.Identity
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth

	LoginLimiter  *rl.UserRateLimiter
	WriteLimiter  *rl.UserRateLimiter
	GlobalLimiter *rl.UserRateLimiter
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := local.New(cfg.Public.LocalStoragePath)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	text := markdown.New()
	alerts := alert.NewFeed(cfg.Public.AlertBuffer)
	codec := jwt.New(cfg.SessionKey(), cfg.SessionTTL())

	identity := service.NewIdentity(seed.Users(now), storage, codec)
	message := service.NewMessage(seed.Messages(now), &utils.MessageValidator{MaxLen: cfg.Public.MaxMessageLen}, cfg.Public.LoadDelay)
	notification := service.NewNotification(seed.Notifications(now), alerts, cfg.Public.LoadDelay)
	language := service.NewLanguage(storage, cfg.Public.DefaultLanguage)

	h := handler.New(identity, message, notification, language, alerts, text, cfg)

	limits := cfg.Public.RateLimits
	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Identity:       identity,
		Handler:        h,
		AuthMiddleware: mw.NewAuth(identity),
		LoginLimiter:   rl.New(limits.LoginPerSecond, limits.LoginBurst, time.Hour),
		WriteLimiter:   rl.New(limits.WritePerSecond, int(limits.WritePerSecond)+1, time.Hour),
		GlobalLimiter:  rl.Rps100(),
	}, nil
}

// Cleanup stops background work started by SetupDependencies.
func (d *Dependencies) Cleanup() {
	d.LoginLimiter.Stop()
	d.WriteLimiter.Stop()
	d.GlobalLimiter.Stop()
}
