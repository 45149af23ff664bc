package service

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	ledger "github.com/dkeysil/channel-registry-bot/internal/adapters/ledger"
	sqlstore "github.com/dkeysil/channel-registry-bot/internal/adapters/sqlstore"
	"github.com/dkeysil/channel-registry-bot/internal/config"
	"github.com/dkeysil/channel-registry-bot/internal/metrics"
	telegramPort "github.com/dkeysil/channel-registry-bot/internal/ports/telegram"
	"github.com/dkeysil/channel-registry-bot/internal/ports/web"
	"github.com/dkeysil/channel-registry-bot/migrations"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

func RunApplication(cfg config.Config) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		panic(err)
	}

	db, err := sqlx.Connect("sqlite3", cfg.DatabasePath)
	if err != nil {
		logger.Fatal("error while connecting to the database", zap.Error(err))
	}

	err = migrations.Run(db.DB)
	if err != nil {
		logger.Fatal("error while running migrations", zap.Error(err))
	}
	store := sqlstore.New(db)

	ledgerClient := ledger.NewClient(cfg.Ledger)

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal("error while creating telegram bot", zap.Error(err))
	}

	me, err := bot.GetMe()
	if err != nil {
		logger.Fatal("error while getting bot info", zap.Error(err))
	}

	verifier := telegramPort.NewAdminVerifier(bot, me.ID, logger)
	tgPort := telegramPort.NewTelegramPort(bot, store, verifier, ledgerClient, logger)

	metrics.MustRegister()
	webServer := web.NewServer(store, logger)
	go func() {
		err := webServer.Listen(cfg.HTTPListenAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http listener stopped", zap.Error(err))
		}
	}()

	logger.Info("starting application", zap.String("bot_name", me.String()))
	tgPort.Listen(ctx)
	logger.Info("application stopped")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
