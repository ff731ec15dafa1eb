package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/logger"
	"github.com/tvarnsen/indyplan/internal/metrics"
)

const priceCacheKey = "market_prices"

// marketPrice is one row of the market price endpoint.
type marketPrice struct {
	TypeID        int32   `json:"type_id"`
	AveragePrice  float64 `json:"average_price"`
	AdjustedPrice float64 `json:"adjusted_price"`
}

// Client fetches live market prices over HTTP. The full price table is
// cached with a TTL so repeated calculations do not hammer the upstream.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *gocache.Cache
}

// NewClient creates a market price client against baseURL.
func NewClient(baseURL string, ttl time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   gocache.New(ttl, 2*ttl),
	}
}

// PricesFor returns prices for the requested ids. Ids the market does not
// know are simply absent from the result.
func (c *Client) PricesFor(ctx context.Context, ids []domain.ItemID) (domain.PriceMap, error) {
	all, err := c.allPrices(ctx)
	if err != nil {
		return domain.PriceMap{}, err
	}
	out := make(domain.PriceMap, len(ids))
	for _, id := range ids {
		if price, ok := all[id]; ok {
			out[id] = price
		}
	}
	return out, nil
}

// Refresh drops the cached price table and fetches a fresh one. Used by the
// background refresher to keep the cache warm between requests.
func (c *Client) Refresh(ctx context.Context) error {
	c.cache.Delete(priceCacheKey)
	_, err := c.allPrices(ctx)
	return err
}

func (c *Client) allPrices(ctx context.Context) (domain.PriceMap, error) {
	if cached, ok := c.cache.Get(priceCacheKey); ok {
		return cached.(domain.PriceMap), nil
	}

	log := logger.FromContext(ctx)
	metrics.PriceFetches.Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/markets/prices/", nil)
	if err != nil {
		metrics.PriceFetchErrors.Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrPricesUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.PriceFetchErrors.Inc()
		log.Error("Market price fetch failed", "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrPricesUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.PriceFetchErrors.Inc()
		log.Error("Market price fetch returned bad status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", domain.ErrPricesUnavailable, resp.StatusCode)
	}

	var rows []marketPrice
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		metrics.PriceFetchErrors.Inc()
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrPricesUnavailable, err)
	}

	prices := make(domain.PriceMap, len(rows))
	for _, row := range rows {
		price := row.AveragePrice
		if price == 0 {
			price = row.AdjustedPrice
		}
		prices[domain.ItemID(row.TypeID)] = price
	}

	c.cache.Set(priceCacheKey, prices, gocache.DefaultExpiration)
	log.Debug("Market prices refreshed", "items", len(prices))
	return prices, nil
}
