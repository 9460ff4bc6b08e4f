package repositories

import (
	"context"
	"strconv"
	"time"

	"homefeed-listings/internal/models"
	"homefeed-listings/pkg/cache"
	"homefeed-listings/pkg/metrics"
)

type listingCacheRepository struct{}

func NewListingCache() ListingCache {
	return &listingCacheRepository{}
}

func (c *listingCacheRepository) GetListing(ctx context.Context, key string) (*models.Listing, error) {
	var listing models.Listing
	if err := cache.GetJSON(ctx, key, &listing); err != nil {
		if err == cache.ErrCacheMiss {
			metrics.CacheMissesTotal.Inc()
			return nil, nil
		}
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	return &listing, nil
}

func (c *listingCacheRepository) SetListing(ctx context.Context, key string, listing *models.Listing, expiration time.Duration) error {
	return cache.SetJSON(ctx, key, listing, expiration)
}

func (c *listingCacheRepository) GetRecent(ctx context.Context, key string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := cache.GetJSON(ctx, key, &listings); err != nil {
		if err == cache.ErrCacheMiss {
			metrics.CacheMissesTotal.Inc()
			return nil, nil
		}
		return nil, err
	}
	metrics.CacheHitsTotal.Inc()
	return listings, nil
}

func (c *listingCacheRepository) SetRecent(ctx context.Context, key string, listings []models.Listing, expiration time.Duration) error {
	return cache.SetJSON(ctx, key, listings, expiration)
}

func (c *listingCacheRepository) GetCount(ctx context.Context, key string) (int64, bool, error) {
	raw := cache.RedisClient.Get(ctx, key)
	if raw.Err() != nil {
		if raw.Err() == cache.ErrCacheMiss {
			metrics.CacheMissesTotal.Inc()
			return 0, false, nil
		}
		return 0, false, raw.Err()
	}
	count, err := strconv.ParseInt(raw.Val(), 10, 64)
	if err != nil {
		return 0, false, err
	}
	metrics.CacheHitsTotal.Inc()
	return count, true, nil
}

func (c *listingCacheRepository) SetCount(ctx context.Context, key string, count int64, expiration time.Duration) error {
	return cache.RedisClient.Set(ctx, key, strconv.FormatInt(count, 10), expiration).Err()
}

func (c *listingCacheRepository) Delete(ctx context.Context, keys ...string) error {
	return cache.Delete(ctx, keys...)
}
