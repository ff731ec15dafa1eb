package catalog

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tvarnsen/indyplan/internal/domain"
	"github.com/tvarnsen/indyplan/internal/metrics"
)

// CacheStats reports hit/miss counts for monitoring.
type CacheStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Size   int    `json:"size"`
}

// Cached decorates a Lookup with an LRU cache with time-based expiration.
// The cache is owned by whoever constructs it and is invalidated explicitly;
// there is no ambient global cache state.
type Cached struct {
	inner  Lookup
	lru    *expirable.LRU[string, any]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCached wraps inner with a cache of the given size and TTL.
func NewCached(inner Lookup, size int, ttl time.Duration) *Cached {
	return &Cached{
		inner: inner,
		lru:   expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func (c *Cached) get(key string) (any, bool) {
	v, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
		metrics.CatalogCacheHits.Inc()
	} else {
		c.misses.Add(1)
		metrics.CatalogCacheMisses.Inc()
	}
	return v, ok
}

func (c *Cached) GetRecipeMaterials(ctx context.Context, recipeID domain.RecipeID) ([]domain.RecipeMaterial, error) {
	key := fmt.Sprintf("mat:%d", recipeID)
	if v, ok := c.get(key); ok {
		return v.([]domain.RecipeMaterial), nil
	}
	materials, err := c.inner.GetRecipeMaterials(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, materials)
	return materials, nil
}

func (c *Cached) GetRecipeProduct(ctx context.Context, recipeID domain.RecipeID) (*domain.RecipeProduct, error) {
	key := fmt.Sprintf("prod:%d", recipeID)
	if v, ok := c.get(key); ok {
		return v.(*domain.RecipeProduct), nil
	}
	product, err := c.inner.GetRecipeProduct(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, product)
	return product, nil
}

func (c *Cached) GetRecipeForProduct(ctx context.Context, itemID domain.ItemID) (domain.RecipeID, error) {
	key := fmt.Sprintf("rev:%d", itemID)
	if v, ok := c.get(key); ok {
		return v.(domain.RecipeID), nil
	}
	recipeID, err := c.inner.GetRecipeForProduct(ctx, itemID)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, recipeID)
	return recipeID, nil
}

func (c *Cached) GetItemGroup(ctx context.Context, itemID domain.ItemID) (domain.GroupID, error) {
	key := fmt.Sprintf("grp:%d", itemID)
	if v, ok := c.get(key); ok {
		return v.(domain.GroupID), nil
	}
	group, err := c.inner.GetItemGroup(ctx, itemID)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, group)
	return group, nil
}

func (c *Cached) GetItemName(ctx context.Context, itemID domain.ItemID) (string, error) {
	key := fmt.Sprintf("name:%d", itemID)
	if v, ok := c.get(key); ok {
		return v.(string), nil
	}
	name, err := c.inner.GetItemName(ctx, itemID)
	if err != nil {
		return "", err
	}
	c.lru.Add(key, name)
	return name, nil
}

func (c *Cached) GetAllDecryptors(ctx context.Context) ([]domain.Decryptor, error) {
	const key = "decryptors"
	if v, ok := c.get(key); ok {
		return v.([]domain.Decryptor), nil
	}
	decryptors, err := c.inner.GetAllDecryptors(ctx)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, decryptors)
	return decryptors, nil
}

func (c *Cached) GetRigBonus(ctx context.Context, rigs []domain.ItemID, targetGroup domain.GroupID, securityStatus float64) (float64, error) {
	key := fmt.Sprintf("rig:%v:%d:%.1f", rigs, targetGroup, securityStatus)
	if v, ok := c.get(key); ok {
		return v.(float64), nil
	}
	bonus, err := c.inner.GetRigBonus(ctx, rigs, targetGroup, securityStatus)
	if err != nil {
		return 0, err
	}
	c.lru.Add(key, bonus)
	return bonus, nil
}

// InvalidateRecipe drops the cached entries for one recipe.
func (c *Cached) InvalidateRecipe(recipeID domain.RecipeID) {
	c.lru.Remove(fmt.Sprintf("mat:%d", recipeID))
	c.lru.Remove(fmt.Sprintf("prod:%d", recipeID))
}

// Purge removes all cached entries.
func (c *Cached) Purge() {
	c.lru.Purge()
}

// Stats returns current hit/miss counts.
func (c *Cached) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
