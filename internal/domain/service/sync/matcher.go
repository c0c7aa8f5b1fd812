package sync

import (
	"slices"

	"marketsync/internal/domain/entity"
)

// Match разбивает фид по каталогу площадки: matched — строки фида, чей код
// есть среди offer id, в порядке фида; unmatched — offer id без строки фида,
// отсортированы для детерминизма.
//
// Каждый offer id срабатывает не больше одного раза: при дублях в фиде
// матчится только первая строка, повторные дубли не попадают никуда,
// чтобы не отправить один товар дважды в одной пачке.
func Match(rows []entity.FeedRow, remote []string) (matched []entity.FeedRow, unmatched []string) {
	listed := make(map[string]struct{}, len(remote))
	for _, offerID := range remote {
		listed[offerID] = struct{}{}
	}

	consumed := make(map[string]struct{}, len(remote))

	for _, row := range rows {
		if _, ok := listed[row.Code]; !ok {
			continue
		}

		if _, ok := consumed[row.Code]; ok {
			continue
		}

		consumed[row.Code] = struct{}{}
		matched = append(matched, row)
	}

	for offerID := range listed {
		if _, ok := consumed[offerID]; !ok {
			unmatched = append(unmatched, offerID)
		}
	}

	slices.Sort(unmatched)

	return matched, unmatched
}
