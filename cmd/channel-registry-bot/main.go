package main

import (
	"github.com/dkeysil/channel-registry-bot/internal/config"
	"github.com/dkeysil/channel-registry-bot/internal/service"
	"github.com/kelseyhightower/envconfig"
)

const (
	prefix = "CHANNEL_REGISTRY"
)

func main() {
	cfg := config.Config{}

	envconfig.MustProcess(prefix, &cfg)

	service.RunApplication(cfg)
}
