package ioc

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
)

func InitTelegramBot() (*tgbotapi.BotAPI, int64) {
	type Config struct {
		Token  string `mapstructure:"token"`
		ChatId int64  `mapstructure:"chat_id"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("notify.telegram", &cfg); err != nil {
		panic(err)
	}

	if cfg.Token == "" {
		panic("no telegram bot token set")
	}
	if cfg.ChatId == 0 {
		panic("no telegram chat id set")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		panic(err)
	}
	return bot, cfg.ChatId
}
