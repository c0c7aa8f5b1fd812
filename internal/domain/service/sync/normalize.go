package sync

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"marketsync/internal/domain"
	"marketsync/pkg/errcodes"
)

// Количество для позиций ">10": точное число неизвестно, публикуем условно большой остаток.
const wellStockedCount = 100

var nonDigits = regexp.MustCompile("[^0-9]")

// NormalizePrice приводит цену фида к строке из цифр целой части:
// "5'990.00 руб." -> "5990". Дробная часть и валюта отбрасываются.
func NormalizePrice(price string) (string, error) {
	whole, _, _ := strings.Cut(price, ".")

	digits := nonDigits.ReplaceAllString(whole, "")
	if digits == "" {
		return "", domain.NewError(errcodes.InvalidPrice, fmt.Sprintf("price %q has no digits", price))
	}

	return digits, nil
}

// ClassifyQuantity переводит текстовое количество фида в публикуемый остаток.
// Правила поставщика: ">10" — остаток 100; ровно "1" — резерв или витринный
// экземпляр, публикуется как 0; остальное — обычное число.
func ClassifyQuantity(quantity string) (int, error) {
	switch quantity {
	case ">10":
		return wellStockedCount, nil
	case "1":
		return 0, nil
	}

	count, err := strconv.Atoi(quantity)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InvalidQuantity, fmt.Sprintf("quantity %q is not numeric", quantity))
	}

	return count, nil
}
