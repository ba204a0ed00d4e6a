package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KNICEX/pair-watcher/internal/repo"
	"github.com/KNICEX/pair-watcher/internal/schedule"
	"github.com/KNICEX/pair-watcher/internal/service/command"
	"github.com/KNICEX/pair-watcher/internal/service/exchange/binance"
	"github.com/KNICEX/pair-watcher/internal/service/monitor"
	"github.com/KNICEX/pair-watcher/internal/service/notification/telegram"
	"github.com/KNICEX/pair-watcher/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetDefault("monitor.poll_interval", time.Minute)
	viper.SetDefault("monitor.exchange", "Binance")
	viper.SetDefault("baseline.path", "known_pairs.json")

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}

}

func main() {
	initViper()

	db := ioc.InitDB()
	bian := ioc.InitBinanceCli()
	bot, chatId := ioc.InitTelegramBot()

	if err := repo.InitTables(db); err != nil {
		panic(err)
	}

	symbolSvc := binance.NewSymbolService(bian)
	notifySvc := telegram.NewService(bot, chatId)
	baselineRepo := repo.NewFileBaselineRepo(viper.GetString("baseline.path"))
	outboxRepo := repo.NewNotificationRepo(db)

	interval := viper.GetDuration("monitor.poll_interval")
	pairSvc := monitor.NewPairMonitor(symbolSvc, baselineRepo, notifySvc, interval,
		monitor.WithExchangeLabel(viper.GetString("monitor.exchange")),
		monitor.WithOutbox(outboxRepo),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := pairSvc.Start(ctx); err != nil {
		panic(err)
	}

	runner := schedule.NewRunner(monitor.NewPairMonitorTask(pairSvc), interval)
	runner.Start(ctx)
	slog.Info("pair monitor running", "interval", interval, "alive", runner.Alive())

	handler := command.NewHandler(bot, chatId, pairSvc)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		panic(err)
	}

	<-runner.Done()
	slog.Info("shutdown complete")
}
