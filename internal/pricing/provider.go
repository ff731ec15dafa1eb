package pricing

import (
	"context"

	"github.com/tvarnsen/indyplan/internal/domain"
)

// Provider supplies unit prices for item ids. Implementations must be safe
// for concurrent use.
type Provider interface {
	PricesFor(ctx context.Context, ids []domain.ItemID) (domain.PriceMap, error)
}

// StaticProvider is a fixed price table. Useful for tests and for callers
// that bring their own prices.
type StaticProvider domain.PriceMap

func (s StaticProvider) PricesFor(_ context.Context, ids []domain.ItemID) (domain.PriceMap, error) {
	out := make(domain.PriceMap, len(ids))
	for _, id := range ids {
		if price, ok := s[id]; ok {
			out[id] = price
		}
	}
	return out, nil
}
