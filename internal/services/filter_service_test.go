package services

import (
	"context"
	"io"
	"reflect"
	"testing"
	"time"

	"homefeed-listings/internal/filters"
	"homefeed-listings/internal/models"
	"homefeed-listings/internal/transformers"
	"homefeed-listings/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

func init() {
	logger.InitLogger(io.Discard, "ERROR")
}

type stubRawListingRepo struct {
	listings      []models.RawListing
	count         int64
	lastPredicate bson.M
}

func (s *stubRawListingRepo) FindByPredicate(ctx context.Context, predicate bson.M) ([]models.RawListing, error) {
	s.lastPredicate = predicate
	return s.listings, nil
}

func (s *stubRawListingRepo) CountByPredicate(ctx context.Context, predicate bson.M) (int64, error) {
	s.lastPredicate = predicate
	return s.count, nil
}

type stubRawPhotoRepo struct {
	photos  []models.RawPhoto
	lastIDs []string
}

func (s *stubRawPhotoRepo) FindByListingIDs(ctx context.Context, listingIDs []string) ([]models.RawPhoto, error) {
	s.lastIDs = listingIDs
	return s.photos, nil
}

type stubListingCache struct {
	counts map[string]int64
}

func (s *stubListingCache) GetListing(ctx context.Context, key string) (*models.Listing, error) {
	return nil, nil
}
func (s *stubListingCache) SetListing(ctx context.Context, key string, listing *models.Listing, expiration time.Duration) error {
	return nil
}
func (s *stubListingCache) GetRecent(ctx context.Context, key string) ([]models.Listing, error) {
	return nil, nil
}
func (s *stubListingCache) SetRecent(ctx context.Context, key string, listings []models.Listing, expiration time.Duration) error {
	return nil
}
func (s *stubListingCache) GetCount(ctx context.Context, key string) (int64, bool, error) {
	count, ok := s.counts[key]
	return count, ok, nil
}
func (s *stubListingCache) SetCount(ctx context.Context, key string, count int64, expiration time.Duration) error {
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[key] = count
	return nil
}
func (s *stubListingCache) Delete(ctx context.Context, keys ...string) error { return nil }

func newFilterFixture(raws []models.RawListing, photos []models.RawPhoto) (*FilterService, *stubRawListingRepo, *stubRawPhotoRepo) {
	rawRepo := &stubRawListingRepo{listings: raws}
	photoRepo := &stubRawPhotoRepo{photos: photos}
	svc := NewFilterService(rawRepo, photoRepo, &stubListingCache{},
		transformers.NewListingTransformer(transformers.NewAddressFormatter()))
	return svc, rawRepo, photoRepo
}

func TestFilterListingsPipeline(t *testing.T) {
	photoID := "pg-1"
	raws := []models.RawListing{
		{
			ID:             "L1",
			CreatedAt:      time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			RawPhotoDataID: &photoID,
			RawData: map[string]interface{}{
				"CurrentPrice": 250000.0,
				"MlsStatus":    "Pending",
			},
		},
	}
	photos := []models.RawPhoto{
		{ID: "pg-1", RawListingID: "L1", PhotoURLs: []string{"p1.jpg"}},
	}

	svc, rawRepo, photoRepo := newFilterFixture(raws, photos)

	min := 100000.0
	filter := &models.RangeFilter{
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		MinPrice:  &min,
	}

	listings, report, err := svc.FilterListings(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 || report.Processed != 1 {
		t.Fatalf("got %d listings, report %+v", len(listings), report)
	}

	// the built predicate is handed to storage unmodified
	if !reflect.DeepEqual(rawRepo.lastPredicate, filters.Build(filter)) {
		t.Errorf("predicate = %v; want %v", rawRepo.lastPredicate, filters.Build(filter))
	}

	// photos are only fetched for the matched listings
	if !reflect.DeepEqual(photoRepo.lastIDs, []string{"L1"}) {
		t.Errorf("photo lookup ids = %v; want [L1]", photoRepo.lastIDs)
	}

	if listings[0].Status != "Pending" || listings[0].Price != 250000 {
		t.Errorf("listing = %+v", listings[0])
	}
	if !reflect.DeepEqual(listings[0].PhotoURLs, []string{"p1.jpg"}) {
		t.Errorf("PhotoURLs = %v", listings[0].PhotoURLs)
	}
}

func TestFilterListingsEmptyWindow(t *testing.T) {
	svc, _, _ := newFilterFixture(nil, nil)

	filter := &models.RangeFilter{
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
	}

	listings, report, err := svc.FilterListings(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 0 || report.Processed != 0 {
		t.Errorf("empty window yielded %d listings, report %+v", len(listings), report)
	}
}

func TestCountListingsUsesDateWindowOnly(t *testing.T) {
	svc, rawRepo, _ := newFilterFixture(nil, nil)
	rawRepo.count = 42

	min := 100000.0
	filter := &models.RangeFilter{
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		MinPrice:  &min,
	}

	count, err := svc.CountListings(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 42 {
		t.Errorf("count = %d; want 42", count)
	}
	if !reflect.DeepEqual(rawRepo.lastPredicate, filters.DateWindow(filter.StartDate, filter.EndDate)) {
		t.Errorf("count predicate = %v; want date window only", rawRepo.lastPredicate)
	}
}

func TestCountListingsServedFromCache(t *testing.T) {
	rawRepo := &stubRawListingRepo{count: 7}
	cacheStub := &stubListingCache{}
	svc := NewFilterService(rawRepo, &stubRawPhotoRepo{}, cacheStub,
		transformers.NewListingTransformer(transformers.NewAddressFormatter()))

	filter := &models.RangeFilter{
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	first, err := svc.CountListings(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// the second call must hit the cache, not the repository
	rawRepo.count = 1000
	second, err := svc.CountListings(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 7 || second != 7 {
		t.Errorf("counts = %d, %d; want cached 7 both times", first, second)
	}
}
