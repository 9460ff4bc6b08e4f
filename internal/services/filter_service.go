package services

import (
	"context"
	"fmt"
	"time"

	"homefeed-listings/internal/filters"
	"homefeed-listings/internal/models"
	"homefeed-listings/internal/repositories"
	"homefeed-listings/internal/transformers"
	"homefeed-listings/pkg/cache"
	"homefeed-listings/pkg/logger"
	"homefeed-listings/pkg/metrics"
)

const countTTL = time.Minute

// FilterService runs the normalization pipeline: predicate build, the two raw
// reads, then one in-memory normalization pass.
type FilterService struct {
	rawListings repositories.RawListingRepository
	rawPhotos   repositories.RawPhotoRepository
	cache       repositories.ListingCache
	transformer transformers.ListingTransformer
}

func NewFilterService(
	rawListings repositories.RawListingRepository,
	rawPhotos repositories.RawPhotoRepository,
	listingCache repositories.ListingCache,
	transformer transformers.ListingTransformer,
) *FilterService {
	return &FilterService{
		rawListings: rawListings,
		rawPhotos:   rawPhotos,
		cache:       listingCache,
		transformer: transformer,
	}
}

// FilterListings fetches the raw listings matching the range filter, joins
// their photos and returns the canonical records plus the skip report.
func (s *FilterService) FilterListings(ctx context.Context, filter *models.RangeFilter) ([]models.ProcessedListing, *transformers.NormalizationReport, error) {
	start := time.Now()

	predicate := filters.Build(filter)
	rawListings, err := s.rawListings.FindByPredicate(ctx, predicate)
	if err != nil {
		return nil, nil, fmt.Errorf("database query failed: %w", err)
	}

	listingIDs := make([]string, 0, len(rawListings))
	for i := range rawListings {
		listingIDs = append(listingIDs, rawListings[i].ID)
	}

	rawPhotos, err := s.rawPhotos.FindByListingIDs(ctx, listingIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("database query failed: %w", err)
	}

	listings, report := s.transformer.NormalizeAll(rawListings, rawPhotos)

	elapsed := time.Since(start)
	metrics.NormalizationDuration.Observe(elapsed.Seconds())
	logger.GlobalLogger.Printf("Processed %d listings in %v (%d skipped)",
		len(rawListings), elapsed, len(report.Skipped))

	return listings, report, nil
}

// CountListings counts raw listings inside the date window only, with a short
// cache in front of the count query.
func (s *FilterService) CountListings(ctx context.Context, filter *models.RangeFilter) (int64, error) {
	key := cache.FilterCountKey(filter.StartDate, filter.EndDate)
	if count, ok, err := s.cache.GetCount(ctx, key); err == nil && ok {
		return count, nil
	}

	count, err := s.rawListings.CountByPredicate(ctx, filters.DateWindow(filter.StartDate, filter.EndDate))
	if err != nil {
		return 0, fmt.Errorf("database query failed: %w", err)
	}

	_ = s.cache.SetCount(ctx, key, count, countTTL)
	return count, nil
}
