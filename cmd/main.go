package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/goserg/scoreboard/internal/config"
	"github.com/goserg/scoreboard/internal/logger"
	"github.com/goserg/scoreboard/internal/metrics"
	"github.com/goserg/scoreboard/internal/service"
	"github.com/goserg/scoreboard/internal/storage"
	"github.com/goserg/scoreboard/internal/storage/bolt"
	"github.com/goserg/scoreboard/internal/storage/memory"
	"github.com/goserg/scoreboard/internal/storage/sqlite"
	"github.com/goserg/scoreboard/internal/tgbot"
	"github.com/goserg/scoreboard/internal/web"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	start := time.Now()

	var serverConfigPath, botConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "server config file")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "telegram bot config file")
	flag.Parse()

	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	log := logger.New(cfg.Server.Debug)

	playerStorage, closer, err := openStorage(cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.WithError(err).Error("unable to close storage")
		}
	}()

	m := metrics.NewService()
	playerService := service.New(playerStorage, m, log)

	server, err := web.New(playerService, cfg.Server, log, metrics.NewHandler())
	if err != nil {
		return err
	}

	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(playerService, cfg, log)
		if err != nil {
			return fmt.Errorf("tg bot: %w", err)
		}
		botCtx, stopBot := context.WithCancel(context.Background())
		defer stopBot()
		go bot.Run(botCtx)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve()
	}()
	m.SetStartupTime(time.Since(start).Seconds())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return err
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}
	return server.Shutdown(shutdownTimeout)
}

func openStorage(cfg config.Storage, log *logrus.Logger) (storage.PlayerStorage, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverBolt:
		s, err := bolt.New(log, cfg.BoltFile)
		return s, s, err
	case config.DriverMemory:
		log.Warn("memory storage is not persisted")
		return memory.New(), io.NopCloser(nil), nil
	default:
		s, err := sqlite.New(log, cfg.SqliteFile)
		return s, s, err
	}
}
