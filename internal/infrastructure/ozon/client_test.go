package ozon_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"marketsync/internal/config"
	"marketsync/internal/domain"
	"marketsync/internal/domain/entity"
	"marketsync/internal/infrastructure/ozon"
	"marketsync/pkg/errcodes"
)

func testConfig(baseURL string) config.Ozon {
	return config.Ozon{
		BaseURL:  baseURL,
		ClientID: "112233",
		APIKey:   "test-key",
	}
}

func TestOfferIDsPaging(t *testing.T) {
	rq := require.New(t)

	var requests []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("112233", r.Header.Get("Client-Id"))
		rq.Equal("test-key", r.Header.Get("Api-Key"))
		rq.Equal("/v2/product/list", r.URL.Path)

		var request struct {
			LastID string `json:"last_id"`
			Limit  int    `json:"limit"`
			Filter struct {
				Visibility string `json:"visibility"`
			} `json:"filter"`
		}
		rq.NoError(json.NewDecoder(r.Body).Decode(&request))
		rq.Equal(1000, request.Limit)
		rq.Equal("ALL", request.Filter.Visibility)

		requests = append(requests, request.LastID)

		if request.LastID == "" {
			io.WriteString(w, `{"result":{"items":[{"offer_id":"A1"},{"offer_id":"A2"}],"total":3,"last_id":"page2"}}`)
			return
		}

		io.WriteString(w, `{"result":{"items":[{"offer_id":"A3"}],"total":3,"last_id":""}}`)
	}))
	defer server.Close()

	client := ozon.NewClient(testConfig(server.URL))

	offerIDs, err := client.OfferIDs(context.Background())
	rq.NoError(err)
	rq.Equal([]string{"A1", "A2", "A3"}, offerIDs)
	rq.Equal([]string{"", "page2"}, requests)
}

func TestUpdateStocksPayload(t *testing.T) {
	rq := require.New(t)

	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/v1/product/import/stocks", r.URL.Path)
		rq.Equal(http.MethodPost, r.Method)

		var err error
		body, err = io.ReadAll(r.Body)
		rq.NoError(err)

		io.WriteString(w, `{"result":[]}`)
	}))
	defer server.Close()

	client := ozon.NewClient(testConfig(server.URL))

	err := client.UpdateStocks(context.Background(), []entity.StockUpdate{
		{OfferID: "A1", Count: 100, AsOf: time.Now()},
		{OfferID: "A3", Count: 0, AsOf: time.Now()},
	})
	rq.NoError(err)

	rq.JSONEq(`{"stocks":[{"offer_id":"A1","stock":100},{"offer_id":"A3","stock":0}]}`, string(body))
}

func TestUpdatePricesPayload(t *testing.T) {
	rq := require.New(t)

	var body []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/v1/product/import/prices", r.URL.Path)

		var err error
		body, err = io.ReadAll(r.Body)
		rq.NoError(err)

		io.WriteString(w, `{"result":[]}`)
	}))
	defer server.Close()

	client := ozon.NewClient(testConfig(server.URL))

	err := client.UpdatePrices(context.Background(), []entity.PriceUpdate{{OfferID: "A1", Price: "5990"}})
	rq.NoError(err)

	rq.JSONEq(`{"prices":[{
		"auto_action_enabled":"UNKNOWN",
		"currency_code":"RUB",
		"offer_id":"A1",
		"old_price":"0",
		"price":"5990"
	}]}`, string(body))
}

func TestRemoteRejection(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"message":"invalid Api-Key"}`)
	}))
	defer server.Close()

	client := ozon.NewClient(testConfig(server.URL))

	err := client.UpdateStocks(context.Background(), nil)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.RemoteRejection, code)
}
