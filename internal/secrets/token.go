// Package secrets looks up credentials that shouldn't live in config files.
package secrets

import (
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// Service groups this app's secrets in the OS keychain.
	KeyringService = "jobradar"

	telegramAccount = "telegram-bot-token"
)

// TelegramBotToken returns the bot token from the environment, falling back
// to the OS keychain. Empty when neither is set; the Telegram transport then
// reports itself unconfigured.
func TelegramBotToken() string {
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")); v != "" {
		return v
	}
	if pw, err := keyring.Get(KeyringService, telegramAccount); err == nil {
		return strings.TrimSpace(pw)
	}
	return ""
}

// SetTelegramBotToken stores the token in the OS keychain.
func SetTelegramBotToken(token string) error {
	return keyring.Set(KeyringService, telegramAccount, strings.TrimSpace(token))
}

// DeleteTelegramBotToken removes the token from the OS keychain.
func DeleteTelegramBotToken() error {
	return keyring.Delete(KeyringService, telegramAccount)
}
