// Package config loads service settings from flags, environment and an
// optional config file through viper.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "CONTACT"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Port      int
	RateLimit int
	CacheTTL  time.Duration
	LogLevel  string
}

// SetDefaults registers defaults and env bindings on v. PORT is honoured
// alongside CONTACT_PORT.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("rate_limit", 500)
	v.SetDefault("cache_ttl", 10*time.Minute)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:      v.GetInt("port"),
		RateLimit: v.GetInt("rate_limit"),
		CacheTTL:  v.GetDuration("cache_ttl"),
		LogLevel:  strings.ToLower(v.GetString("log_level")),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalid, c.Port)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("%w: rate_limit must be positive, got %d", ErrInvalid, c.RateLimit)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl must not be negative", ErrInvalid)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalid, s)
}
