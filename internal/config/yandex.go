package config

type Yandex struct {
	BaseURL string `env:"MARKET_BASE_URL" envDefault:"https://api.partner.market.yandex.ru" validate:"url"`
	Token   string `env:"MARKET_TOKEN,required"`

	// Кампании FBS и DBS со своими складами.
	FBSCampaignID  string `env:"FBS_ID,required"`
	DBSCampaignID  string `env:"DBS_ID,required"`
	FBSWarehouseID string `env:"WAREHOUSE_FBS_ID,required"`
	DBSWarehouseID string `env:"WAREHOUSE_DBS_ID,required"`

	// Лимиты пачек API Яндекс.Маркета.
	StockBatchSize int `env:"MARKET_STOCK_BATCH_SIZE" envDefault:"2000" validate:"gt=0"`
	PriceBatchSize int `env:"MARKET_PRICE_BATCH_SIZE" envDefault:"500" validate:"gt=0"`
}
