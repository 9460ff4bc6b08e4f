package repositories

import (
	"context"
	"time"

	"homefeed-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// RawListingRepository is the read-only view of the vendor feed store. The
// predicate comes from the filters package and is passed through unmodified.
type RawListingRepository interface {
	FindByPredicate(ctx context.Context, predicate bson.M) ([]models.RawListing, error)
	CountByPredicate(ctx context.Context, predicate bson.M) (int64, error)
}

type RawPhotoRepository interface {
	FindByListingIDs(ctx context.Context, listingIDs []string) ([]models.RawPhoto, error)
}

type ListingRepository interface {
	FindByID(ctx context.Context, id string) (*models.Listing, error)
	FindAll(ctx context.Context) ([]models.Listing, error)
	FindRecent(ctx context.Context, limit int) ([]models.Listing, error)
	Search(ctx context.Context, query string) ([]models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	Update(ctx context.Context, listing *models.Listing) error
	Delete(ctx context.Context, id string) error
}

type ListingCache interface {
	GetListing(ctx context.Context, key string) (*models.Listing, error)
	SetListing(ctx context.Context, key string, listing *models.Listing, expiration time.Duration) error
	GetRecent(ctx context.Context, key string) ([]models.Listing, error)
	SetRecent(ctx context.Context, key string, listings []models.Listing, expiration time.Duration) error
	GetCount(ctx context.Context, key string) (int64, bool, error)
	SetCount(ctx context.Context, key string, count int64, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
