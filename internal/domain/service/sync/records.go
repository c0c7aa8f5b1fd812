package sync

import (
	"time"

	"marketsync/internal/domain/entity"
)

// RowIssue — строка фида, из которой не удалось собрать запись.
type RowIssue struct {
	Row entity.FeedRow
	Err error
}

// BuildStocks собирает записи остатков: по одной на каждую сматченную строку
// фида и нулевой остаток на каждый offer id, которого в фиде нет. Строки с
// браком в количестве пропускаются и возвращаются отдельно.
func BuildStocks(matched []entity.FeedRow, unmatched []string, asOf time.Time) ([]entity.StockUpdate, []RowIssue) {
	stocks := make([]entity.StockUpdate, 0, len(matched)+len(unmatched))

	var issues []RowIssue

	for _, row := range matched {
		count, err := ClassifyQuantity(row.Quantity)
		if err != nil {
			issues = append(issues, RowIssue{Row: row, Err: err})
			continue
		}

		stocks = append(stocks, entity.StockUpdate{OfferID: row.Code, Count: count, AsOf: asOf})
	}

	for _, offerID := range unmatched {
		stocks = append(stocks, entity.StockUpdate{OfferID: offerID, Count: 0, AsOf: asOf})
	}

	return stocks, issues
}

// BuildPrices собирает записи цен только для сматченных строк: товар, ушедший
// из фида, цену не получает.
func BuildPrices(matched []entity.FeedRow) ([]entity.PriceUpdate, []RowIssue) {
	prices := make([]entity.PriceUpdate, 0, len(matched))

	var issues []RowIssue

	for _, row := range matched {
		digits, err := NormalizePrice(row.Price)
		if err != nil {
			issues = append(issues, RowIssue{Row: row, Err: err})
			continue
		}

		prices = append(prices, entity.PriceUpdate{OfferID: row.Code, Price: digits})
	}

	return prices, issues
}
