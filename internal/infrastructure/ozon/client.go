package ozon

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"marketsync/internal/config"
	"marketsync/internal/domain"
	"marketsync/internal/domain/entity"
	"marketsync/pkg/errcodes"
	"marketsync/pkg/httpx"
	"marketsync/pkg/logx"
	"marketsync/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const pageLimit = 1000

// Client — клиент seller API Ozon. Аутентификация парой Client-Id/Api-Key
// в заголовках, все вызовы логируются с маскировкой реквизитов.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Ozon) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				httpx.NewHeaderAuthRoundTripper(http.DefaultTransport, map[string]string{
					"Client-Id": cfg.ClientID,
					"Api-Key":   cfg.APIKey,
				}),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
		baseURL: cfg.BaseURL,
	}
}

func (c *Client) Name() string { return "ozon" }

// OfferIDs выкачивает весь каталог магазина постранично через last_id
// и возвращает артикулы.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	var (
		offerIDs []string
		lastID   string
	)

	for {
		request := productListRequest{
			Filter: productFilter{Visibility: "ALL"},
			LastID: lastID,
			Limit:  pageLimit,
		}

		var response productListResponse

		if err := c.post(ctx, "/v2/product/list", request, &response); err != nil {
			return nil, fmt.Errorf("product list page: %w", err)
		}

		for _, item := range response.Result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}

		lastID = response.Result.LastID

		if response.Result.Total == len(offerIDs) || len(response.Result.Items) == 0 {
			break
		}
	}

	return offerIDs, nil
}

func (c *Client) UpdateStocks(ctx context.Context, stocks []entity.StockUpdate) error {
	payload := stocksRequest{Stocks: lox.Map(stocks, fromStockUpdate)}

	if err := c.post(ctx, "/v1/product/import/stocks", payload, nil); err != nil {
		return fmt.Errorf("import stocks: %w", err)
	}

	return nil
}

func (c *Client) UpdatePrices(ctx context.Context, prices []entity.PriceUpdate) error {
	payload := pricesRequest{Prices: lox.Map(prices, fromPriceUpdate)}

	if err := c.post(ctx, "/v1/product/import/prices", payload, nil); err != nil {
		return fmt.Errorf("import prices: %w", err)
	}

	return nil
}

func (c *Client) post(ctx context.Context, path string, payload, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WrapError(err, errcodes.TransportError, "httpClient.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return domain.NewError(
			errcodes.RemoteRejection,
			fmt.Sprintf("%s: status %d: %s", path, resp.StatusCode, raw),
		)
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
