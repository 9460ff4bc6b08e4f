package repositories

import (
	"context"
	"time"

	"homefeed-listings/internal/models"
	"homefeed-listings/pkg/database"
	"homefeed-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type rawPhotoRepository struct {
	collection *mongo.Collection
}

func NewRawPhotoRepository() RawPhotoRepository {
	return &rawPhotoRepository{
		collection: database.DB.Collection(database.RawPhotosCollection),
	}
}

// FindByListingIDs fetches only the photo groups belonging to the listings a
// filter matched, not the whole photo set.
func (r *rawPhotoRepository) FindByListingIDs(ctx context.Context, listingIDs []string) ([]models.RawPhoto, error) {
	if len(listingIDs) == 0 {
		return nil, nil
	}

	filter := bson.M{"rawListingId": bson.M{"$in": listingIDs}}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("find", database.RawPhotosCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.RawPhotosCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var photos []models.RawPhoto
	start = time.Now()
	err = cursor.All(ctx, &photos)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", database.RawPhotosCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.RawPhotosCollection).Inc()
		return nil, err
	}
	return photos, nil
}
