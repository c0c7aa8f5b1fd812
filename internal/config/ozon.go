package config

type Ozon struct {
	BaseURL  string `env:"OZON_BASE_URL" envDefault:"https://api-seller.ozon.ru" validate:"url"`
	ClientID string `env:"CLIENT_ID,required"`
	APIKey   string `env:"SELLER_TOKEN,required"`

	// Лимиты пачек API Ozon.
	StockBatchSize int `env:"OZON_STOCK_BATCH_SIZE" envDefault:"100" validate:"gt=0"`
	PriceBatchSize int `env:"OZON_PRICE_BATCH_SIZE" envDefault:"1000" validate:"gt=0"`
}
