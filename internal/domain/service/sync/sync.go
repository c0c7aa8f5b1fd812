package sync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"marketsync/internal/domain"
	"marketsync/internal/domain/entity"
	"marketsync/pkg/contextx"
	"marketsync/pkg/errcodes"
	"marketsync/pkg/logx"
	"marketsync/pkg/lox"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// MarketplaceClient — площадка глазами движка синхронизации: полный список
// offer id и отправка одной пачки за вызов.
type MarketplaceClient interface {
	Name() string
	OfferIDs(ctx context.Context) ([]string, error)
	UpdateStocks(ctx context.Context, stocks []entity.StockUpdate) error
	UpdatePrices(ctx context.Context, prices []entity.PriceUpdate) error
}

// BatchCaps — лимиты размера пачки API площадки.
type BatchCaps struct {
	Stocks int
	Prices int
}

type Service struct {
	client MarketplaceClient
	caps   BatchCaps
	now    func() time.Time
}

func NewService(client MarketplaceClient, caps BatchCaps) *Service {
	return &Service{
		client: client,
		caps:   caps,
		now:    time.Now,
	}
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Sync прогоняет один цикл для площадки: каталог -> матчинг -> записи ->
// пачки -> отправка строго по порядку. Ошибка транспорта или отказ площадки
// обрывает прогон; уже отправленные пачки не откатываются.
func (s *Service) Sync(ctx context.Context, rows []entity.FeedRow) (entity.Report, error) {
	log := logger(ctx).With(slog.String("platform", s.client.Name()))

	remote, err := s.client.OfferIDs(ctx)
	if err != nil {
		return entity.Report{}, fmt.Errorf("fetch offer ids: %w", err)
	}

	log.Info("fetched offer ids", "count", len(remote))

	matched, unmatched := Match(rows, remote)
	asOf := s.now().UTC().Truncate(time.Second)

	stocks, stockIssues := BuildStocks(matched, unmatched, asOf)
	prices, priceIssues := BuildPrices(matched)

	for _, issue := range stockIssues {
		log.Warn("feed row skipped", slog.String("code", issue.Row.Code), logx.Error(issue.Err))
	}
	for _, issue := range priceIssues {
		log.Warn("feed row skipped", slog.String("code", issue.Row.Code), logx.Error(issue.Err))
	}

	report := entity.Report{
		Stocks: stocks,
		Prices: prices,
		InStock: lo.Filter(stocks, func(stock entity.StockUpdate, _ int) bool {
			return stock.InStock()
		}),
		SkippedRows: len(stockIssues) + len(priceIssues),
	}

	report.StockBatches, err = s.submitStocks(ctx, stocks)
	if err != nil {
		return report, err
	}

	report.PriceBatches, err = s.submitPrices(ctx, prices)
	if err != nil {
		return report, err
	}

	log.Info("sync finished",
		slog.Int("stocks", len(stocks)),
		slog.Int("prices", len(prices)),
		slog.Int("in_stock", len(report.InStock)),
		slog.Int("skipped", report.SkippedRows),
		slog.Int("stock_batches", report.StockBatches),
		slog.Int("price_batches", report.PriceBatches),
	)

	return report, nil
}

func (s *Service) submitStocks(ctx context.Context, stocks []entity.StockUpdate) (int, error) {
	batches, err := lox.Chunk(stocks, s.caps.Stocks)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InvalidBatchSize, fmt.Sprintf("stock batch size %d", s.caps.Stocks))
	}

	for i, batch := range batches {
		if err := s.client.UpdateStocks(ctx, batch); err != nil {
			return i, fmt.Errorf("update stocks batch %d/%d: %w", i+1, len(batches), err)
		}
	}

	return len(batches), nil
}

func (s *Service) submitPrices(ctx context.Context, prices []entity.PriceUpdate) (int, error) {
	batches, err := lox.Chunk(prices, s.caps.Prices)
	if err != nil {
		return 0, domain.WrapError(err, errcodes.InvalidBatchSize, fmt.Sprintf("price batch size %d", s.caps.Prices))
	}

	for i, batch := range batches {
		if err := s.client.UpdatePrices(ctx, batch); err != nil {
			return i, fmt.Errorf("update prices batch %d/%d: %w", i+1, len(batches), err)
		}
	}

	return len(batches), nil
}

// Platform — имя площадки клиента, для логов и сводок.
func (s *Service) Platform() string {
	return s.client.Name()
}
