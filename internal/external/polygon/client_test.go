package polygon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wonny/premia/internal/options"
	"github.com/wonny/premia/pkg/config"
	"github.com/wonny/premia/pkg/httputil"
	"github.com/wonny/premia/pkg/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	log := logger.New(cfg)

	return NewClient(config.PolygonConfig{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		PriceTimeout: 2 * time.Second,
		ChainTimeout: 2 * time.Second,
		ChainLimit:   250,
	}, httputil.New(cfg, log).DisableRetry(), log)
}

func TestGetSpotPrice(t *testing.T) {
	var gotPath, gotKey string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("apiKey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"ticker": "SPY",
			"status": "OK",
			"resultsCount": 1,
			"results": [{"o": 99.1, "h": 101.2, "l": 98.7, "c": 100.5, "v": 1200000}]
		}`))
	})

	price, err := c.GetSpotPrice(context.Background(), "SPY")
	if err != nil {
		t.Fatalf("GetSpotPrice() error = %v", err)
	}
	if price != 100.5 {
		t.Errorf("GetSpotPrice() = %v, want 100.5", price)
	}
	if gotPath != "/v2/aggs/ticker/SPY/prev" {
		t.Errorf("GetSpotPrice() path = %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("GetSpotPrice() apiKey = %q, want test-key", gotKey)
	}
}

func TestGetSpotPriceEmptyResults(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ticker": "ZZZZ", "status": "OK", "resultsCount": 0, "results": []}`))
	})

	_, err := c.GetSpotPrice(context.Background(), "ZZZZ")
	if !errors.Is(err, options.ErrNoData) {
		t.Errorf("GetSpotPrice() error = %v, want ErrNoData", err)
	}
}

func TestGetSpotPriceServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.GetSpotPrice(context.Background(), "SPY")
	if err == nil {
		t.Fatal("GetSpotPrice() expected error on 502")
	}
	if errors.Is(err, options.ErrNoData) {
		t.Error("GetSpotPrice() outage must not be reported as ErrNoData")
	}
}

func TestGetOptionChain(t *testing.T) {
	var gotPath, gotLimit string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"details": {"ticker": "O:SPY260918C00105000", "contract_type": "call", "strike_price": 105, "expiration_date": "2026-09-18"},
					"greeks": {"delta": 0.31},
					"last_quote": {"bid": 1.00, "ask": 1.20},
					"day": {"volume": 340},
					"open_interest": 1210
				},
				{
					"details": {"ticker": "O:SPY260918P00095000", "contract_type": "put", "strike_price": 95, "expiration_date": "2026-09-18"},
					"greeks": {"delta": -0.22},
					"last_quote": {"bid": 0.80, "ask": 1.00},
					"day": {"volume": 120},
					"open_interest": 830
				}
			]
		}`))
	})

	chain, err := c.GetOptionChain(context.Background(), "SPY")
	if err != nil {
		t.Fatalf("GetOptionChain() error = %v", err)
	}
	if gotPath != "/v3/snapshot/options/SPY" {
		t.Errorf("GetOptionChain() path = %s", gotPath)
	}
	if gotLimit != "250" {
		t.Errorf("GetOptionChain() limit = %q, want 250", gotLimit)
	}
	if len(chain) != 2 {
		t.Fatalf("GetOptionChain() got %d contracts, want 2", len(chain))
	}

	call := chain[0]
	if call.ContractType != "call" || call.Strike != 105 || call.Expiration != "2026-09-18" {
		t.Errorf("GetOptionChain() call details = %+v", call)
	}
	if call.Bid != 1.00 || call.Ask != 1.20 || call.Delta != 0.31 {
		t.Errorf("GetOptionChain() call quote = %+v", call)
	}
	if call.Volume != 340 || call.OpenInterest != 1210 {
		t.Errorf("GetOptionChain() call liquidity = %+v", call)
	}

	put := chain[1]
	if put.ContractType != "put" || put.Delta != -0.22 {
		t.Errorf("GetOptionChain() put = %+v", put)
	}
}

func TestGetOptionChainEmpty(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": []}`))
	})

	chain, err := c.GetOptionChain(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("GetOptionChain() error = %v", err)
	}
	if len(chain) != 0 {
		t.Errorf("GetOptionChain() got %d contracts, want 0", len(chain))
	}
}

func TestGetOptionChainMalformedBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": [`))
	})

	_, err := c.GetOptionChain(context.Background(), "SPY")
	if err == nil {
		t.Fatal("GetOptionChain() expected decode error")
	}
}
