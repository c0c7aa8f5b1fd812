package yandex

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

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

const pageLimit = 200

// Client — клиент partner API Яндекс.Маркета для одной кампании.
// Кампаний у магазина две (FBS и DBS), каждая со своим складом,
// поэтому клиент создаётся на кампанию, а не на магазин.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	name        string
	campaignID  string
	warehouseID string
}

func NewClient(cfg config.Yandex, name, campaignID, warehouseID string) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(
				httpx.NewStaticBearerRoundTripper(http.DefaultTransport, cfg.Token),
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			),
		},
		baseURL:     cfg.BaseURL,
		name:        name,
		campaignID:  campaignID,
		warehouseID: warehouseID,
	}
}

func (c *Client) Name() string { return c.name }

// OfferIDs выкачивает список размещённых товаров кампании постранично
// через page_token и возвращает shopSku каждого.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	var (
		offerIDs  []string
		pageToken string
	)

	for {
		query := url.Values{"limit": {strconv.Itoa(pageLimit)}}
		if pageToken != "" {
			query.Set("page_token", pageToken)
		}

		var response offerMappingResponse

		path := fmt.Sprintf("/campaigns/%s/offer-mapping-entries?%s", c.campaignID, query.Encode())
		if err := c.do(ctx, http.MethodGet, path, nil, &response); err != nil {
			return nil, fmt.Errorf("offer mapping page: %w", err)
		}

		for _, mappingEntry := range response.Result.OfferMappingEntries {
			offerIDs = append(offerIDs, mappingEntry.Offer.ShopSKU)
		}

		pageToken = response.Result.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return offerIDs, nil
}

func (c *Client) UpdateStocks(ctx context.Context, stocks []entity.StockUpdate) error {
	payload := stocksRequest{
		SKUs: lox.Map(stocks, func(update entity.StockUpdate) stockSKU {
			return fromStockUpdate(update, c.warehouseID)
		}),
	}

	path := fmt.Sprintf("/campaigns/%s/offers/stocks", c.campaignID)
	if err := c.do(ctx, http.MethodPut, path, payload, nil); err != nil {
		return fmt.Errorf("update stocks: %w", err)
	}

	return nil
}

func (c *Client) UpdatePrices(ctx context.Context, prices []entity.PriceUpdate) error {
	offers, err := lox.MapErr(prices, fromPriceUpdate)
	if err != nil {
		return fmt.Errorf("convert prices: %w", err)
	}

	path := fmt.Sprintf("/campaigns/%s/offer-prices/updates", c.campaignID)
	if err := c.do(ctx, http.MethodPost, path, pricesRequest{Offers: offers}, nil); err != nil {
		return fmt.Errorf("update prices: %w", err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, dest any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

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
