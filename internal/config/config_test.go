package config

import (
	"testing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/go-cmp/cmp"

	"github.com/stickball/presskit/internal/contact"
)

var vars = []string{
	"ADDR", "PORT", "APP_ENV", "EMAIL_HOST", "EMAIL_PORT", "EMAIL_SECURE", "EMAIL_USER",
	"EMAIL_PASS", "EMAIL_FROM", "EMAIL_TO", "MESSAGES_DIR", "PRESSKIT_LOGO",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := contact.SMTPConfig{Host: "smtp.gmail.com", Port: 587}
	if diff := cmp.Diff(want, c.SMTP); diff != "" {
		t.Errorf("SMTP mismatch (-want +got):\n%s", diff)
	}
	if c.Addr != ":3000" || c.Development() {
		t.Errorf("Addr = %q, Development() = %v", c.Addr, c.Development())
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("EMAIL_HOST", "mail.example.com")
	t.Setenv("EMAIL_PORT", "465")
	t.Setenv("EMAIL_USER", "bot@example.com")
	t.Setenv("EMAIL_PASS", "secret")
	t.Setenv("EMAIL_TO", "team@example.com")
	t.Setenv("MESSAGES_DIR", "/srv/messages")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := contact.SMTPConfig{
		Host: "mail.example.com", Port: 465, Secure: true,
		User: "bot@example.com", Password: "secret",
	}
	if diff := cmp.Diff(want, c.SMTP); diff != "" {
		t.Errorf("SMTP mismatch (-want +got):\n%s", diff)
	}
	got := []string{c.Addr, c.MailFrom, c.MailTo, c.MessagesDir}
	if diff := cmp.Diff([]string{":8080", "bot@example.com", "team@example.com", "/srv/messages"}, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	if !c.Development() {
		t.Error("Development() = false for APP_ENV=Development")
	}

	t.Setenv("ADDR", "127.0.0.1:9000")
	if c, _ := Load(); c.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q, ADDR should win over PORT", c.Addr)
	}
}

func TestLoadInvalid(t *testing.T) {
	for name, kv := range map[string][2]string{
		"port text":   {"EMAIL_PORT", "smtp"},
		"port range":  {"EMAIL_PORT", "70000"},
		"secure text": {"EMAIL_SECURE", "maybe"},
	} {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Errorf("Load() accepted %s=%s", kv[0], kv[1])
			}
		})
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"", log.LevelInfo},
		{"production", log.LevelInfo},
		{"development", log.LevelDebug},
		{"Development", log.LevelDebug},
	}
	for _, tt := range tests {
		if got := (Config{Env: tt.env}).LogLevel(); got != tt.want {
			t.Errorf("LogLevel() with APP_ENV=%q = %v, want %v", tt.env, got, tt.want)
		}
	}
}
