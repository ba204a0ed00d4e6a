package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestService_Send(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(sender, 42)

	require.NoError(t, svc.Send(context.Background(), "🆕 New pair detected: <b>SOLUSDT</b>"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(42), sender.sent[0].ChatID)
	assert.Equal(t, tgbotapi.ModeHTML, sender.sent[0].ParseMode)
	assert.Contains(t, sender.sent[0].Text, "SOLUSDT")
}

func TestService_SendFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("429 too many requests")}
	svc := NewService(sender, 42)

	err := svc.Send(context.Background(), "whatever")
	assert.ErrorContains(t, err, "telegram send")
}
