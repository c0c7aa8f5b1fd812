package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Supplier Supplier
	Ozon     Ozon
	Yandex   Yandex
	Bot      Bot
	Sync     Sync
}

type Bot struct {
	Token  string `env:"BOT_TOKEN"`
	ChatID int64  `env:"BOT_CHAT_ID"`
}

// Enabled — уведомления включаются только при полном наборе реквизитов.
func (b Bot) Enabled() bool {
	return b.Token != "" && b.ChatID != 0
}

type Sync struct {
	// Interval 0 означает один прогон и выход.
	Interval time.Duration `env:"SYNC_INTERVAL" envDefault:"0"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	return config, nil
}
