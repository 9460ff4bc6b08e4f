package repositories

import (
	"context"
	"fmt"
	"time"

	"homefeed-listings/internal/models"
	"homefeed-listings/pkg/database"
	"homefeed-listings/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type listingRepository struct {
	collection *mongo.Collection
}

func NewListingRepository() ListingRepository {
	return &listingRepository{
		collection: database.DB.Collection(database.ListingsCollection),
	}
}

func (r *listingRepository) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	start := time.Now()
	var listing models.Listing
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil // Not found
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", database.ListingsCollection).Inc()
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) FindAll(ctx context.Context) ([]models.Listing, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.ListingsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.ListingsCollection).Inc()
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) FindRecent(ctx context.Context, limit int) ([]models.Listing, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.ListingsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.ListingsCollection).Inc()
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Search(ctx context.Context, query string) ([]models.Listing, error) {
	pattern := primitive.Regex{Pattern: query, Options: "i"}
	filter := bson.M{
		"$or": []bson.M{
			{"address": pattern},
			{"city": pattern},
			{"propertyType": pattern},
		},
	}

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("find", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.ListingsCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.ListingsCollection).Inc()
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) Create(ctx context.Context, listing *models.Listing) error {
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, listing)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.ListingsCollection).Inc()
		return err
	}
	return nil
}

func (r *listingRepository) Update(ctx context.Context, listing *models.Listing) error {
	update := bson.M{
		"$set": bson.M{
			"address":      listing.Address,
			"city":         listing.City,
			"state":        listing.State,
			"price":        listing.Price,
			"bedrooms":     listing.Bedrooms,
			"bathrooms":    listing.Bathrooms,
			"squareFeet":   listing.SquareFeet,
			"propertyType": listing.PropertyType,
			"photoUrls":    listing.PhotoURLs,
			"status":       listing.Status,
			"latitude":     listing.Latitude,
			"longitude":    listing.Longitude,
			"zipCode":      listing.ZipCode,
		},
	}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": listing.ID}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.ListingsCollection).Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing not found")
	}
	return nil
}

func (r *listingRepository) Delete(ctx context.Context, id string) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", database.ListingsCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", database.ListingsCollection).Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("listing not found")
	}
	return nil
}
