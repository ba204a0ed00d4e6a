package command

import (
	"context"
	"testing"
	"time"

	"github.com/KNICEX/pair-watcher/internal/service/monitor"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	sent    []tgbotapi.MessageConfig
	updates chan tgbotapi.Update
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

type fixedStatus struct {
	status monitor.Status
}

func (s fixedStatus) Status() monitor.Status {
	return s.status
}

func commandUpdate(chatId int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: chatId},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(text)},
			},
		},
	}
}

func TestHandler_Status(t *testing.T) {
	bot := &fakeBot{}
	h := NewHandler(bot, 42, fixedStatus{status: monitor.Status{
		KnownCount:   1372,
		PollInterval: time.Minute,
	}})

	h.Handle(commandUpdate(42, "/status"))

	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(42), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "Known pairs: 1372")
	assert.Contains(t, bot.sent[0].Text, "Polling interval: 1m0s")
}

func TestHandler_Start(t *testing.T) {
	bot := &fakeBot{}
	h := NewHandler(bot, 42, fixedStatus{})

	h.Handle(commandUpdate(42, "/start"))

	require.Len(t, bot.sent, 1)
	assert.Contains(t, bot.sent[0].Text, "already running")
}

func TestHandler_IgnoresForeignChatAndChatter(t *testing.T) {
	bot := &fakeBot{}
	h := NewHandler(bot, 42, fixedStatus{})

	// Wrong chat.
	h.Handle(commandUpdate(99, "/status"))
	// Not a command.
	h.Handle(tgbotapi.Update{Message: &tgbotapi.Message{
		Text: "hello there",
		Chat: &tgbotapi.Chat{ID: 42},
	}})
	// No message at all.
	h.Handle(tgbotapi.Update{})
	// Unknown command.
	h.Handle(commandUpdate(42, "/help"))

	assert.Empty(t, bot.sent)
}

func TestHandler_RunStopsOnClosedChannel(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update, 1)}
	h := NewHandler(bot, 42, fixedStatus{})

	bot.updates <- commandUpdate(42, "/start")
	close(bot.updates)

	require.NoError(t, h.Run(context.Background()))
	assert.Len(t, bot.sent, 1)
}

func TestHandler_RunStopsOnContextCancel(t *testing.T) {
	bot := &fakeBot{updates: make(chan tgbotapi.Update)}
	h := NewHandler(bot, 42, fixedStatus{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, h.Run(ctx), context.Canceled)
}
