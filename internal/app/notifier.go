// internal/app/notifier.go
package app

import (
	"context"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers notification texts to the configured chat.
type Notifier struct {
	client domainTelegram.Client
	chatID int64
	logger logrus.FieldLogger
}

func NewNotifier(client domainTelegram.Client, chatID int64, logger logrus.FieldLogger) *Notifier {
	return &Notifier{
		client: client,
		chatID: chatID,
		logger: logger,
	}
}

// Deliver sends text to the chat. Every failure comes back as a KindDelivery error.
func (n *Notifier) Deliver(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return homework.NewError(homework.KindDelivery, "send telegram message", err)
	}
	err := n.client.SendMessage(n.chatID, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	if err != nil {
		return homework.NewError(homework.KindDelivery, "send telegram message", err)
	}
	n.logger.WithField("chat_id", n.chatID).Infof("Message sent: %s", text)
	return nil
}
