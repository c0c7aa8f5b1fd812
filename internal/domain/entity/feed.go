package entity

// FeedRow — одна строка фида поставщика (ostatki.zip).
// Код приходит числом, но сравнивается всегда как строка.
type FeedRow struct {
	Code     string `json:"code"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}
