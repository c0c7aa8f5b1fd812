package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"

	// Коды синхронизации остатков и цен.
	InvalidQuantity  failure.ErrorCode = "InvalidQuantity"  // Нечисловое значение остатка в фиде
	InvalidPrice     failure.ErrorCode = "InvalidPrice"     // Цена без единой цифры
	InvalidBatchSize failure.ErrorCode = "InvalidBatchSize" // Размер пачки <= 0
	TransportError   failure.ErrorCode = "TransportError"   // Сеть, таймаут, обрыв соединения
	RemoteRejection  failure.ErrorCode = "RemoteRejection"  // Маркетплейс ответил не 2xx
	FeedUnavailable  failure.ErrorCode = "FeedUnavailable"  // Фид поставщика не скачался или не разобрался
)
