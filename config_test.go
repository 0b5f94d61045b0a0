package vavoping

import (
	"strings"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvAPISecret, "s")
	t.Setenv(EnvBotToken, "tok")
	t.Setenv(EnvChatID, "42")

	cfg := ConfigFromEnv()
	if err := cfg.RequireExchange(); err != nil {
		t.Errorf("RequireExchange() error = %v", err)
	}
	if err := cfg.RequireTelegram(); err != nil {
		t.Errorf("RequireTelegram() error = %v", err)
	}
	if cfg.ChatID != "42" {
		t.Errorf("ChatID = %q, want %q", cfg.ChatID, "42")
	}
}

func TestConfig_RequireExchange_missing(t *testing.T) {
	cfg := Config{APIKey: "k"} // no secret
	err := cfg.RequireExchange()
	if err == nil {
		t.Fatal("RequireExchange() expected an error")
	}
	if !strings.Contains(err.Error(), EnvAPISecret) {
		t.Errorf("error %q does not name %s", err, EnvAPISecret)
	}
}

func TestConfig_RequireTelegram_missing(t *testing.T) {
	err := Config{}.RequireTelegram()
	if err == nil {
		t.Fatal("RequireTelegram() expected an error")
	}
	for _, name := range []string{EnvBotToken, EnvChatID} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}
