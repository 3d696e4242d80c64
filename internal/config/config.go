package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/stickball/presskit/internal/contact"
)

// Config is the server configuration read from the environment
type Config struct {
	// Addr is the listen address, built from ADDR or PORT
	Addr string
	// Env is APP_ENV; "development" exposes error details to clients
	Env string

	SMTP contact.SMTPConfig
	// MailFrom and MailTo are EMAIL_FROM and EMAIL_TO
	MailFrom string
	MailTo   string

	// MessagesDir holds <lang>.json overrides merged over the built-in catalogs
	MessagesDir string
	// Logo is a path or URL of the header logo
	Logo string

	ShutdownTimeout time.Duration
}

// Development reports whether error details may be shown to clients
func (c Config) Development() bool {
	return strings.EqualFold(c.Env, "development")
}

// LogLevel is debug in development and info otherwise
func (c Config) LogLevel() log.Level {
	if c.Development() {
		return log.LevelDebug
	}
	return log.LevelInfo
}

// Load reads the configuration, applying defaults for unset variables
func Load() (Config, error) {
	port, err := intEnv("EMAIL_PORT", 587)
	if err != nil {
		return Config{}, err
	}
	secure, err := boolEnv("EMAIL_SECURE", port == 465)
	if err != nil {
		return Config{}, err
	}

	user := env("EMAIL_USER", "")
	c := Config{
		Addr: env("ADDR", ":"+env("PORT", "3000")),
		Env:  env("APP_ENV", "production"),
		SMTP: contact.SMTPConfig{
			Host:     env("EMAIL_HOST", "smtp.gmail.com"),
			Port:     port,
			Secure:   secure,
			User:     user,
			Password: env("EMAIL_PASS", ""),
		},
		MailFrom:        env("EMAIL_FROM", user),
		MailTo:          env("EMAIL_TO", user),
		MessagesDir:     env("MESSAGES_DIR", ""),
		Logo:            env("PRESSKIT_LOGO", ""),
		ShutdownTimeout: 10 * time.Second,
	}
	return c, nil
}

func env(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > 65535 {
		return 0, fmt.Errorf("invalid %s %q: want a port number", key, v)
	}
	return n, nil
}

func boolEnv(key string, def bool) (bool, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
