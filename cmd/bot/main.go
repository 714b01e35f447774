package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	log, logCloser := logger.New(cfg)
	defer logCloser.Close()

	log.Infof("Homework status bot starting. LogLevel: %s, Environment: %s, Schedule: %s", cfg.LogLevel, cfg.Environment, cfg.PollSchedule)

	if missing := cfg.MissingTokens(); len(missing) > 0 {
		log.Errorf("Missing required environment variables: %s", strings.Join(missing, ", "))
		if cfg.StrictTokens {
			log.Error("STRICT_TOKENS is set, refusing to start")
			logCloser.Close()
			os.Exit(1)
		}
	}

	waiter, err := scheduler.NewIntervalWaiter(cfg.PollSchedule, log)
	if err != nil {
		log.Errorf("Invalid POLL_SCHEDULE: %v", err)
		logCloser.Close()
		os.Exit(1)
	}

	// An invalid bot token aborts startup here; every later failure is reported to the chat instead.
	bot, err := telegram.NewBot(telegram.BotConfig{Token: cfg.TelegramToken, Timeout: cfg.RequestTimeout})
	if err != nil {
		log.Errorf("FATAL: Could not create Telegram bot: %v", err)
		logCloser.Close()
		os.Exit(1)
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)
	log.Info("Telegram notifier initialized.")

	apiClient := practicum.NewClient(practicum.ClientConfig{
		Endpoint: cfg.Endpoint,
		Token:    cfg.PracticumToken,
		Timeout:  cfg.RequestTimeout,
		Logger:   log,
	})

	poller := app.NewPoller(apiClient, notifier, waiter, log, time.Now().Unix())

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil {
		log.Errorf("Poller stopped with error: %v", err)
		logCloser.Close()
		os.Exit(1)
	}
	log.Info("Homework status bot shut down gracefully.")
}
