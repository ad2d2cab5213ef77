package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultEndpoint = "https://api.binance.com/api/v3/ticker/24hr"
	defaultSymbol   = "BTCUSDT"
)

// Quote is one ticker reading.
type Quote struct {
	LastPrice     float64
	ChangePercent float64
}

// binanceTicker mirrors the 24hr ticker response (trimmed to needed fields).
// Binance encodes the numbers as strings.
type binanceTicker struct {
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
}

// Client fetches the ticker for a single trading pair.
type Client struct {
	Endpoint string
	Symbol   string
	HTTP     *http.Client
}

func NewClient() *Client {
	return &Client{
		Endpoint: defaultEndpoint,
		Symbol:   defaultSymbol,
		HTTP:     &http.Client{Timeout: 5 * time.Second},
	}
}

// Ticker returns the pair's last price and 24h change percent.
func (c *Client) Ticker(ctx context.Context) (Quote, error) {
	u := c.Endpoint + "?symbol=" + c.Symbol
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Quote{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Quote{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Quote{}, fmt.Errorf("ticker returned %d", resp.StatusCode)
	}
	var t binanceTicker
	if err := json.NewDecoder(resp.Body).Decode(&t); err != nil {
		return Quote{}, fmt.Errorf("parse ticker json: %w", err)
	}
	last, err := strconv.ParseFloat(t.LastPrice, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("parse lastPrice %q: %w", t.LastPrice, err)
	}
	pct, err := strconv.ParseFloat(t.PriceChangePercent, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("parse priceChangePercent %q: %w", t.PriceChangePercent, err)
	}
	return Quote{LastPrice: last, ChangePercent: pct}, nil
}
