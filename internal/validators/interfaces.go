package validators

import (
	"homefeed-listings/internal/models"
)

type FilterValidator interface {
	ParseRangeFilter(startDate, endDate, minPrice, maxPrice string) (*models.RangeFilter, error)
	ParseDateWindow(startDate, endDate string) (*models.RangeFilter, error)
}

type ListingValidator interface {
	ValidateCreate(listing *models.Listing) error
	ValidateUpdate(listing *models.Listing) error
}
