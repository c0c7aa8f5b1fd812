package entity

// Report — итог одного прогона синхронизации для одной площадки.
type Report struct {
	Stocks  []StockUpdate
	Prices  []PriceUpdate
	InStock []StockUpdate // остатки с ненулевым количеством

	SkippedRows  int // записи, пропущенные из-за брака в количестве или цене
	StockBatches int
	PriceBatches int
}
