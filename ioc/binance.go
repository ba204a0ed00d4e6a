package ioc

import (
	"net/http"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/spf13/viper"
)

func InitBinanceCli() *binance.Client {
	type Config struct {
		ApiKey    string        `mapstructure:"api_key"`
		ApiSecret string        `mapstructure:"api_secret"`
		BaseUrl   string        `mapstructure:"base_url"`
		Timeout   time.Duration `mapstructure:"timeout"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.binance", &cfg); err != nil {
		panic(err)
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := binance.NewClient(cfg.ApiKey, cfg.ApiSecret)
	cli.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	if cfg.BaseUrl != "" {
		cli.BaseURL = cfg.BaseUrl
	}
	return cli
}
