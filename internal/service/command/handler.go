package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KNICEX/pair-watcher/internal/service/monitor"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StatusProvider is a read-only view of the watcher, safe to call while a
// poll cycle is in progress.
type StatusProvider interface {
	Status() monitor.Status
}

// Bot is the slice of *tgbotapi.BotAPI the handler needs.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type Handler struct {
	bot    Bot
	chatId int64
	status StatusProvider
}

func NewHandler(bot Bot, chatId int64, status StatusProvider) *Handler {
	return &Handler{
		bot:    bot,
		chatId: chatId,
		status: status,
	}
}

// Run consumes command updates until ctx is cancelled or the update
// channel is closed.
func (h *Handler) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := h.bot.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			h.Handle(update)
		}
	}
}

func (h *Handler) Handle(update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	// Only answer the configured chat.
	if update.Message.Chat.ID != h.chatId {
		return
	}

	var reply string
	switch update.Message.Command() {
	case "start":
		reply = "👋 The pair watcher is already running in the background!"
	case "status":
		status := h.status.Status()
		reply = fmt.Sprintf("📊 Known pairs: %d\nPolling interval: %s", status.KnownCount, status.PollInterval)
	default:
		return
	}

	if _, err := h.bot.Send(tgbotapi.NewMessage(update.Message.Chat.ID, reply)); err != nil {
		slog.Error("failed to answer command", "command", update.Message.Command(), "error", err)
	}
}
