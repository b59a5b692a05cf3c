package notifier

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/amirhossein-jamali/pollwin/internal/domain/port/core"
	"github.com/amirhossein-jamali/pollwin/internal/domain/port/external"
)

// Sender is the part of the bot API the notifier needs
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts operator notifications into one admin chat
type TelegramNotifier struct {
	sender Sender
	chatID int64
	logger core.Logger
}

// NewTelegramNotifier connects to the bot API with the given token
func NewTelegramNotifier(token string, chatID int64, logger core.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	logger.Info("Telegram notifier connected", map[string]any{
		"bot":     bot.Self.UserName,
		"chat_id": chatID,
	})
	return NewTelegramNotifierWithSender(bot, chatID, logger), nil
}

// NewTelegramNotifierWithSender creates a notifier on top of an existing sender
func NewTelegramNotifierWithSender(sender Sender, chatID int64, logger core.Logger) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, chatID: chatID, logger: logger}
}

// Notify sends the message, giving up when ctx ends first
func (n *TelegramNotifier) Notify(ctx context.Context, note external.Notification) error {
	msg := tgbotapi.NewMessage(n.chatID, format(note))
	msg.DisableWebPagePreview = true

	done := make(chan error, 1)
	go func() {
		_, err := n.sender.Send(msg)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("telegram send %s: %w", note.Kind, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func format(note external.Notification) string {
	title, ok := titles[note.Kind]
	if !ok {
		title = string(note.Kind)
	}
	return title + "\n" + note.Message
}

var titles = map[external.EventKind]string{
	external.EventWithdrawalRequested: "💸 Withdrawal requested",
	external.EventWithdrawalProcessed: "✅ Withdrawal processed",
	external.EventPollSettled:         "🏁 Poll settled",
	external.EventRefundRequired:      "⚠️ Refund required",
}
