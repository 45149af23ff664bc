package config

import ledger "github.com/dkeysil/channel-registry-bot/internal/adapters/ledger"

type Config struct {
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"bot.db"`

	HTTPListenAddr string `envconfig:"HTTP_LISTEN_ADDR" default:":8080"`

	Debug bool `envconfig:"DEBUG" default:"true"`

	Ledger *ledger.Config `envconfig:"LEDGER"`
}
