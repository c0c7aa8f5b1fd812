package supplier

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xuri/excelize/v2"

	"marketsync/internal/config"
	"marketsync/internal/domain"
	"marketsync/internal/domain/entity"
	"marketsync/pkg/errcodes"
)

// Шапка отчёта поставщика занимает первые 17 строк листа,
// 18-я — заголовки колонок.
const headerRow = 17

const (
	columnCode     = "Код"
	columnQuantity = "Количество"
	columnPrice    = "Цена"
)

// Loader скачивает zip-архив фида поставщика и разбирает таблицу
// остатков в строки фида.
type Loader struct {
	httpClient *http.Client
	feedURL    string
}

func NewLoader(cfg config.Supplier) *Loader {
	return &Loader{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		feedURL:    cfg.FeedURL,
	}
}

func (l *Loader) Load(ctx context.Context) ([]entity.FeedRow, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FeedUnavailable, "download feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(errcodes.FeedUnavailable, fmt.Sprintf("download feed: status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FeedUnavailable, "read feed body")
	}

	rows, err := parseArchive(raw)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.FeedUnavailable, "parse feed")
	}

	return rows, nil
}

func parseArchive(raw []byte) ([]entity.FeedRow, error) {
	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("zip.NewReader: %w", err)
	}

	for _, file := range archive.File {
		if !strings.HasSuffix(file.Name, ".xls") && !strings.HasSuffix(file.Name, ".xlsx") {
			continue
		}

		reader, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", file.Name, err)
		}
		defer reader.Close()

		return parseSheet(reader)
	}

	return nil, fmt.Errorf("no spreadsheet in archive")
}

func parseSheet(reader io.Reader) ([]entity.FeedRow, error) {
	book, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("excelize.OpenReader: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("book.GetRows: %w", err)
	}

	if len(rows) <= headerRow {
		return nil, fmt.Errorf("sheet has no header row")
	}

	columns := make(map[string]int, len(rows[headerRow]))
	for i, name := range rows[headerRow] {
		columns[strings.TrimSpace(name)] = i
	}

	for _, name := range []string{columnCode, columnQuantity, columnPrice} {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("column %q not found", name)
		}
	}

	feedRows := make([]entity.FeedRow, 0, len(rows)-headerRow-1)

	for _, row := range rows[headerRow+1:] {
		code := cell(row, columns[columnCode])
		if code == "" {
			continue
		}

		feedRows = append(feedRows, entity.FeedRow{
			Code:     code,
			Quantity: cell(row, columns[columnQuantity]),
			Price:    cell(row, columns[columnPrice]),
		})
	}

	return feedRows, nil
}

// cell достаёт значение колонки: GetRows обрезает пустые хвосты строк.
func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[index])
}
