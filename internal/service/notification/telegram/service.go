package telegram

import (
	"context"
	"fmt"

	"github.com/KNICEX/pair-watcher/internal/service/notification"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageSender is the slice of *tgbotapi.BotAPI the service needs.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Service struct {
	bot    MessageSender
	chatId int64
}

// NewService sends HTML-formatted messages to a single chat.
func NewService(bot MessageSender, chatId int64) notification.Service {
	return &Service{
		bot:    bot,
		chatId: chatId,
	}
}

func (svc *Service) Send(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(svc.chatId, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := svc.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
