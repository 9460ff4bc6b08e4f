package transformers

import (
	"homefeed-listings/internal/models"
)

type AddressFormatter interface {
	Format(payload map[string]interface{}) AddressParts
}

type ListingTransformer interface {
	NormalizeAll(rawListings []models.RawListing, rawPhotos []models.RawPhoto) ([]models.ProcessedListing, *NormalizationReport)
}
