package filters

import (
	"time"

	"homefeed-listings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PriceField is the raw-listings document path the price conjunct applies to.
const PriceField = "rawData.CurrentPrice"

// Build translates a range filter into the storage predicate. The creation
// window is always a closed interval; the price conjunct is added only when a
// bound is supplied, and then also requires the field to be non-null, so a
// record without a price never satisfies a bounded query.
func Build(filter *models.RangeFilter) bson.M {
	predicate := bson.M{
		"createdAt": bson.M{"$gte": filter.StartDate, "$lte": filter.EndDate},
	}

	switch filter.PriceBound() {
	case models.PriceMinOnly:
		predicate[PriceField] = bson.M{"$ne": nil, "$gte": *filter.MinPrice}
	case models.PriceMaxOnly:
		predicate[PriceField] = bson.M{"$ne": nil, "$lte": *filter.MaxPrice}
	case models.PriceBetween:
		predicate[PriceField] = bson.M{"$ne": nil, "$gte": *filter.MinPrice, "$lte": *filter.MaxPrice}
	case models.PriceUnbounded:
		// price left unconstrained
	}

	return predicate
}

// DateWindow is the date-only predicate used by the count endpoint.
func DateWindow(start, end time.Time) bson.M {
	return bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
	}
}
