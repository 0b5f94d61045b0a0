package vavoping

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables the tool is configured with. They are read once
// into a Config at startup, nothing reads the environment ad hoc.
const (
	EnvAPIKey    = "BITVAVO_API_KEY"
	EnvAPISecret = "BITVAVO_API_SECRET"
	EnvBotToken  = "TELEGRAM_BOT_TOKEN"
	EnvChatID    = "TELEGRAM_CHAT_ID"
	EnvGeminiKey = "GEMINI_API_KEY"
)

// Config carries every credential of a run.
type Config struct {
	APIKey    string // Bitvavo API key
	APISecret string // Bitvavo API secret
	BotToken  string // Telegram bot token
	ChatID    string // Telegram destination chat
	GeminiKey string // optional, enables AI commentary
}

// ConfigFromEnv populates a Config from the environment. It does not
// validate: commands that only read balances have no business requiring
// a bot token, they call the Require helpers for what they use.
func ConfigFromEnv() Config {
	return Config{
		APIKey:    os.Getenv(EnvAPIKey),
		APISecret: os.Getenv(EnvAPISecret),
		BotToken:  os.Getenv(EnvBotToken),
		ChatID:    os.Getenv(EnvChatID),
		GeminiKey: os.Getenv(EnvGeminiKey),
	}
}

// RequireExchange checks the exchange credentials are present.
func (c Config) RequireExchange() error {
	return missing(map[string]string{
		EnvAPIKey:    c.APIKey,
		EnvAPISecret: c.APISecret,
	})
}

// RequireTelegram checks the bot credentials are present.
func (c Config) RequireTelegram() error {
	return missing(map[string]string{
		EnvBotToken: c.BotToken,
		EnvChatID:   c.ChatID,
	})
}

func missing(vars map[string]string) error {
	var names []string
	for name, v := range vars {
		if v == "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	// deterministic order for the error message
	if len(names) > 1 && names[0] > names[1] {
		names[0], names[1] = names[1], names[0]
	}
	return fmt.Errorf("missing environment variable %s", strings.Join(names, ", "))
}
