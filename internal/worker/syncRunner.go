package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"marketsync/internal/domain/entity"
	service "marketsync/internal/domain/service/sync"
	"marketsync/pkg/contextx"
	"marketsync/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type FeedLoader interface {
	Load(ctx context.Context) ([]entity.FeedRow, error)
}

// Summary — итог синхронизации одной площадки в рамках прохода.
type Summary struct {
	Platform string
	Report   entity.Report
	Err      error
}

// SyncRunner прогоняет полный проход (фид -> все площадки) один раз или по
// таймеру. Ошибка одной площадки не останавливает остальные в том же проходе.
type SyncRunner struct {
	loader    FeedLoader
	services  []*service.Service
	summaries chan<- Summary
	interval  time.Duration
}

func NewSyncRunner(loader FeedLoader, services []*service.Service) *SyncRunner {
	return &SyncRunner{
		loader:   loader,
		services: services,
	}
}

// WithInterval включает периодический режим; 0 оставляет один проход.
func (w *SyncRunner) WithInterval(interval time.Duration) *SyncRunner {
	w.interval = interval
	return w
}

// WithSummaries подключает канал сводок для нотификатора.
func (w *SyncRunner) WithSummaries(summaries chan<- Summary) *SyncRunner {
	w.summaries = summaries
	return w
}

func (w *SyncRunner) Run(ctx context.Context) error {
	for {
		err := w.runPass(ctx)

		if w.interval <= 0 {
			return err
		}

		if err != nil {
			logger(ctx).Error("sync pass failed", logx.Error(err))
		}

		select {
		case <-time.After(w.interval):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *SyncRunner) runPass(ctx context.Context) error {
	traceID := contextx.TraceID(xid.New().String())
	ctx = contextx.WithTraceID(ctx, traceID)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldTraceID, traceID.String())))

	log := logger(ctx)

	rows, err := w.loader.Load(ctx)
	if err != nil {
		return err
	}

	log.Info("feed loaded", slog.Int("rows", len(rows)))

	var errs []error

	for _, svc := range w.services {
		report, err := svc.Sync(ctx, rows)
		if err != nil {
			log.Error("platform sync failed", slog.String("platform", svc.Platform()), logx.Error(err))
			errs = append(errs, err)
		}

		if w.summaries != nil {
			select {
			case w.summaries <- Summary{Platform: svc.Platform(), Report: report, Err: err}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return errors.Join(errs...)
}
