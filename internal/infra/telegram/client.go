// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

// BotConfig configures the telebot instance used for outgoing messages.
type BotConfig struct {
	Token   string
	Timeout time.Duration
	// URL overrides the Bot API address; empty means api.telegram.org.
	URL string
	// Offline skips the getMe call that validates the token.
	Offline bool
}

// NewBot creates a send-only bot. Unless Offline is set the token is checked
// against the Bot API, so an invalid token fails here.
func NewBot(cfg BotConfig) (*telebot.Bot, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	bot, err := telebot.NewBot(telebot.Settings{
		URL:     cfg.URL,
		Token:   cfg.Token,
		Client:  &http.Client{Timeout: timeout},
		Offline: cfg.Offline,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	_, err := tba.bot.Send(&telebot.Chat{ID: chatID}, text, options)
	return err
}
