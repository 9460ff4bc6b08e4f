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

type rawListingRepository struct {
	collection *mongo.Collection
}

func NewRawListingRepository() RawListingRepository {
	return &rawListingRepository{
		collection: database.DB.Collection(database.RawListingsCollection),
	}
}

func (r *rawListingRepository) FindByPredicate(ctx context.Context, predicate bson.M) ([]models.RawListing, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, predicate)
	metrics.MongoOperationDuration.WithLabelValues("find", database.RawListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.RawListingsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.RawListing
	start = time.Now()
	err = cursor.All(ctx, &listings)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", database.RawListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.RawListingsCollection).Inc()
		return nil, err
	}
	return listings, nil
}

func (r *rawListingRepository) CountByPredicate(ctx context.Context, predicate bson.M) (int64, error) {
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, predicate)
	metrics.MongoOperationDuration.WithLabelValues("count_documents", database.RawListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", database.RawListingsCollection).Inc()
		return 0, err
	}
	return count, nil
}
