package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// create indexes backing the range filter and the recent-listings query.
func CreateListingIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(RawListingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}, {Key: "rawData.CurrentPrice", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(RawPhotosCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "rawListingId", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(ListingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "city", Value: 1}, {Key: "state", Value: 1}},
		},
	})
	return err
}
