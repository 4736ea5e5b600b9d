package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Addr             string        `yaml:"addr"`
	LogLevel         string        `yaml:"log_level"`
	LogJSON          bool          `yaml:"log_json"`
	LocalStoragePath string        `yaml:"local_storage_path"` // file backing the persisted session and language; empty keeps it in memory
	SessionTTL       time.Duration `yaml:"session_ttl"`
	LoadDelay        time.Duration `yaml:"load_delay"` // stores report loading until this elapses after start
	MaxMessageLen    int           `yaml:"max_message_len"`
	AlertBuffer      int           `yaml:"alert_buffer"`
	NotifyOnActivity bool          `yaml:"notify_on_activity"` // create reply/like notifications from the handler layer
	SecureCookies    bool          `yaml:"secure_cookies"`
	CorsOrigins      []string      `yaml:"cors_allowed_origins"`
	DefaultLanguage  string        `yaml:"default_language"`
	RateLimits       RateLimits    `yaml:"rate_limits"`
}

type RateLimits struct {
	LoginPerSecond float64 `yaml:"login_per_second"` // per IP
	LoginBurst     int     `yaml:"login_burst"`      // logins allowed back to back, e.g. logout then login as someone else
	WritePerSecond float64 `yaml:"write_per_second"` // per user
}

type Private struct {
	SessionKey string `yaml:"session_key"`
}

func (c *Config) SessionKey() string {
	return c.Private.SessionKey
}

func (c *Config) SessionTTL() time.Duration {
	return c.Public.SessionTTL
}

// Default returns a configuration usable without any files (tests, local runs).
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	p := &c.Public
	if p.Addr == "" {
		p.Addr = ":8080"
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
	if p.SessionTTL == 0 {
		p.SessionTTL = 30 * 24 * time.Hour
	}
	if p.MaxMessageLen == 0 {
		p.MaxMessageLen = 10_000
	}
	if p.AlertBuffer == 0 {
		p.AlertBuffer = 50
	}
	if p.DefaultLanguage == "" {
		p.DefaultLanguage = "en"
	}
	if p.RateLimits.LoginPerSecond == 0 {
		p.RateLimits.LoginPerSecond = 1
	}
	if p.RateLimits.LoginBurst == 0 {
		p.RateLimits.LoginBurst = 5
	}
	if p.RateLimits.WritePerSecond == 0 {
		p.RateLimits.WritePerSecond = 10
	}
	if c.Private.SessionKey == "" {
		c.Private.SessionKey = "whisper-dev-session-key"
	}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath + ": " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyDefaults()
	return cfg
}
