package notifier

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"marketsync/internal/worker"
	"marketsync/pkg/contextx"
	"marketsync/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type TelegramBot struct {
	bot    *telego.Bot
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run обрабатывает сводки из канала до его закрытия.
func (b *TelegramBot) Run(ctx context.Context, summaries <-chan worker.Summary) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case summary, ok := <-summaries:
			if !ok {
				return nil
			}
			if err := b.SendSummary(ctx, summary); err != nil {
				logger(ctx).Error("failed to send summary", logx.Error(err))
			}
		}
	}
}

func (b *TelegramBot) SendSummary(ctx context.Context, summary worker.Summary) error {
	var text string

	if summary.Err != nil {
		text = fmt.Sprintf(
			"❌ <b>%s</b>: синхронизация прервана\n\n<code>%v</code>",
			summary.Platform,
			summary.Err,
		)
	} else {
		report := summary.Report
		text = fmt.Sprintf(
			"✅ <b>%s</b>\n\n"+
				"📦 Остатки: %d (в наличии %d)\n"+
				"💰 Цены: %d\n"+
				"🚚 Пачек: %d остатков + %d цен\n"+
				"⚠️ Пропущено строк: %d",
			summary.Platform,
			len(report.Stocks),
			len(report.InStock),
			len(report.Prices),
			report.StockBatches,
			report.PriceBatches,
			report.SkippedRows,
		)
	}

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	_, err := b.bot.SendMessage(ctx, msg)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	_, err := b.bot.SendMessage(ctx, msg)
	return err
}
