package config

import "time"

type Supplier struct {
	FeedURL string        `env:"FEED_URL" envDefault:"https://timeworld.ru/upload/files/ostatki.zip" validate:"url"`
	Timeout time.Duration `env:"FEED_TIMEOUT" envDefault:"1m"`
}
