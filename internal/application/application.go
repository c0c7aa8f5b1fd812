package application

import (
	"context"
	"fmt"

	"marketsync/internal/config"
	service "marketsync/internal/domain/service/sync"
	"marketsync/internal/infrastructure/notifier"
	"marketsync/internal/infrastructure/ozon"
	"marketsync/internal/infrastructure/supplier"
	"marketsync/internal/infrastructure/yandex"
	"marketsync/internal/worker"
	"marketsync/pkg/contextx"
	"marketsync/pkg/logx"
)

func Run(ctx context.Context) error {
	log := contextx.LoggerFromContextOrDefault(ctx)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load: %w", err)
	}

	// 2. Feed loader
	loader := supplier.NewLoader(cfg.Supplier)

	// 3. Площадки: Ozon и две кампании Яндекс.Маркета
	yandexCaps := service.BatchCaps{
		Stocks: cfg.Yandex.StockBatchSize,
		Prices: cfg.Yandex.PriceBatchSize,
	}

	services := []*service.Service{
		service.NewService(
			ozon.NewClient(cfg.Ozon),
			service.BatchCaps{Stocks: cfg.Ozon.StockBatchSize, Prices: cfg.Ozon.PriceBatchSize},
		),
		service.NewService(
			yandex.NewClient(cfg.Yandex, "yandex-fbs", cfg.Yandex.FBSCampaignID, cfg.Yandex.FBSWarehouseID),
			yandexCaps,
		),
		service.NewService(
			yandex.NewClient(cfg.Yandex, "yandex-dbs", cfg.Yandex.DBSCampaignID, cfg.Yandex.DBSWarehouseID),
			yandexCaps,
		),
	}

	runner := worker.NewSyncRunner(loader, services).
		WithInterval(cfg.Sync.Interval)

	// 4. Notify bot
	var (
		summaries chan worker.Summary
		botDone   chan struct{}
	)

	if cfg.Bot.Enabled() {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier bot: %w", err)
		}

		summaries = make(chan worker.Summary, len(services))
		botDone = make(chan struct{})
		runner.WithSummaries(summaries)

		go func() {
			defer close(botDone)

			if err := alertBot.Run(ctx, summaries); err != nil && ctx.Err() == nil {
				log.Error("notifier bot stopped", logx.Error(err))
			}
		}()

		log.Info("notifier bot started listening")
	}

	log.Info("sync runner started",
		"platforms", len(services),
		"interval", cfg.Sync.Interval,
	)

	runErr := runner.Run(ctx)

	if summaries != nil {
		close(summaries)
		<-botDone
	}

	return runErr
}
