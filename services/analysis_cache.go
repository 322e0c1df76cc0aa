package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"smartcloset/models"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog/log"
)

// AnalysisCache remembers successful image analyses keyed by image hash and
// language. Fallback records are never stored.
type AnalysisCache struct {
	cache  *cache.Cache[models.PartialClothingItem]
	client *ristretto.Cache
	ttl    time.Duration
}

func NewAnalysisCache(ttl time.Duration) (*AnalysisCache, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)
	return &AnalysisCache{
		cache:  cache.New[models.PartialClothingItem](ristrettoStore),
		client: ristrettoCache,
		ttl:    ttl,
	}, nil
}

func analysisKey(image []byte, lang models.Language) string {
	sum := sha256.Sum256(image)
	return hex.EncodeToString(sum[:]) + ":" + string(lang)
}

func (c *AnalysisCache) Get(ctx context.Context, image []byte, lang models.Language) (models.PartialClothingItem, bool) {
	if c == nil {
		return models.PartialClothingItem{}, false
	}
	item, err := c.cache.Get(ctx, analysisKey(image, lang))
	if err != nil {
		return models.PartialClothingItem{}, false
	}
	return item, true
}

func (c *AnalysisCache) Set(ctx context.Context, image []byte, lang models.Language, item models.PartialClothingItem) {
	if c == nil {
		return
	}
	err := c.cache.Set(ctx, analysisKey(image, lang), item,
		store.WithCost(1),
		store.WithExpiration(c.ttl),
	)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Msg("analysis cache write dropped")
		return
	}
	// ristretto applies writes through a buffer
	c.client.Wait()
}
