package entity

import "time"

// StockUpdate — платформо-нейтральная запись остатка. Платформенные клиенты
// сами раскладывают её в формат своего API. AsOf — момент оценки остатка,
// общий для всех записей одного прогона.
type StockUpdate struct {
	OfferID string    `json:"offer_id"`
	Count   int       `json:"count"`
	AsOf    time.Time `json:"as_of"`
}

// PriceUpdate несёт нормализованную цену: только цифры целой части,
// без разделителей и валюты.
type PriceUpdate struct {
	OfferID string `json:"offer_id"`
	Price   string `json:"price"`
}

func (s StockUpdate) InStock() bool {
	return s.Count != 0
}
