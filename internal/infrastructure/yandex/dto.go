package yandex

import (
	"fmt"
	"strconv"
	"time"

	"marketsync/internal/domain"
	"marketsync/internal/domain/entity"
	"marketsync/pkg/errcodes"
)

type offerMappingEntry struct {
	Offer struct {
		ShopSKU string `json:"shopSku"`
	} `json:"offer"`
}

type offerMappingResponse struct {
	Result struct {
		OfferMappingEntries []offerMappingEntry `json:"offerMappingEntries"`
		Paging              struct {
			NextPageToken string `json:"nextPageToken"`
		} `json:"paging"`
	} `json:"result"`
}

type stockCountItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

type stockSKU struct {
	SKU         string           `json:"sku"`
	WarehouseID string           `json:"warehouseId"`
	Items       []stockCountItem `json:"items"`
}

type stocksRequest struct {
	SKUs []stockSKU `json:"skus"`
}

func fromStockUpdate(update entity.StockUpdate, warehouseID string) stockSKU {
	return stockSKU{
		SKU:         update.OfferID,
		WarehouseID: warehouseID,
		Items: []stockCountItem{
			{
				Count:     update.Count,
				Type:      "FIT",
				UpdatedAt: update.AsOf.UTC().Format(time.RFC3339),
			},
		},
	}
}

type priceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

type priceOffer struct {
	ID    string     `json:"id"`
	Price priceValue `json:"price"`
}

type pricesRequest struct {
	Offers []priceOffer `json:"offers"`
}

func fromPriceUpdate(update entity.PriceUpdate) (priceOffer, error) {
	value, err := strconv.Atoi(update.Price)
	if err != nil {
		return priceOffer{}, domain.WrapError(
			err,
			errcodes.InvalidPrice,
			fmt.Sprintf("price %q for offer %s is not numeric", update.Price, update.OfferID),
		)
	}

	return priceOffer{
		ID: update.OfferID,
		Price: priceValue{
			Value:      value,
			CurrencyID: "RUR",
		},
	}, nil
}
