package sync_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"marketsync/internal/domain/entity"
	"marketsync/internal/domain/service/sync"
)

func row(code string) entity.FeedRow {
	return entity.FeedRow{Code: code, Quantity: "5", Price: "100 руб."}
}

func TestMatchDisjoint(t *testing.T) {
	rq := require.New(t)

	rows := []entity.FeedRow{row("X1"), row("X2")}
	remote := []string{"B2", "A1"}

	matched, unmatched := sync.Match(rows, remote)

	rq.Empty(matched)
	rq.Equal([]string{"A1", "B2"}, unmatched)
}

func TestMatchAllListed(t *testing.T) {
	rq := require.New(t)

	rows := []entity.FeedRow{row("A1"), row("A2"), row("A3")}
	remote := []string{"A3", "A1", "A2"}

	matched, unmatched := sync.Match(rows, remote)

	rq.Equal(rows, matched)
	rq.Empty(unmatched)
}

func TestMatchKeepsFeedOrder(t *testing.T) {
	rq := require.New(t)

	rows := []entity.FeedRow{row("C"), row("A"), row("B")}
	remote := []string{"A", "B", "C"}

	matched, _ := sync.Match(rows, remote)

	rq.Equal([]entity.FeedRow{row("C"), row("A"), row("B")}, matched)
}

func TestMatchDuplicateRowsConsumeOnce(t *testing.T) {
	rq := require.New(t)

	first := entity.FeedRow{Code: "A1", Quantity: ">10", Price: "1'000.00 руб."}
	dup := entity.FeedRow{Code: "A1", Quantity: "3", Price: "900.00 руб."}

	matched, unmatched := sync.Match([]entity.FeedRow{first, dup}, []string{"A1", "A2"})

	// матчится только первая строка дубля, повтор исчезает совсем
	rq.Equal([]entity.FeedRow{first}, matched)
	rq.Equal([]string{"A2"}, unmatched)
}

func TestMatchFeedOnlyCodesDropped(t *testing.T) {
	rq := require.New(t)

	matched, unmatched := sync.Match([]entity.FeedRow{row("A1"), row("Z9")}, []string{"A1"})

	rq.Equal([]entity.FeedRow{row("A1")}, matched)
	rq.Empty(unmatched)
}
