package ozon

import "marketsync/internal/domain/entity"

type productFilter struct {
	Visibility string `json:"visibility"`
}

type productListRequest struct {
	Filter productFilter `json:"filter"`
	LastID string        `json:"last_id"`
	Limit  int           `json:"limit"`
}

type productListItem struct {
	OfferID string `json:"offer_id"`
}

type productListResponse struct {
	Result struct {
		Items  []productListItem `json:"items"`
		Total  int               `json:"total"`
		LastID string            `json:"last_id"`
	} `json:"result"`
}

type stockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type stocksRequest struct {
	Stocks []stockItem `json:"stocks"`
}

func fromStockUpdate(update entity.StockUpdate) stockItem {
	return stockItem{
		OfferID: update.OfferID,
		Stock:   update.Count,
	}
}

type priceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type pricesRequest struct {
	Prices []priceItem `json:"prices"`
}

func fromPriceUpdate(update entity.PriceUpdate) priceItem {
	return priceItem{
		AutoActionEnabled: "UNKNOWN",
		CurrencyCode:      "RUB",
		OfferID:           update.OfferID,
		OldPrice:          "0",
		Price:             update.Price,
	}
}
