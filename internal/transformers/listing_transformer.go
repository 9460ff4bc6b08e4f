package transformers

import (
	"fmt"

	"homefeed-listings/internal/models"
	"homefeed-listings/pkg/logger"
	"homefeed-listings/pkg/metrics"
)

// Vendor payload field names mapped onto the canonical record.
const (
	fieldPrice        = "CurrentPrice"
	fieldBedrooms     = "BedroomsTotal"
	fieldBathrooms    = "BathroomsTotalInteger"
	fieldSquareFeet   = "LivingArea"
	fieldPropertyType = "PropertyType"
	fieldStatus       = "MlsStatus"
	fieldLatitude     = "Latitude"
	fieldLongitude    = "Longitude"
	fieldZipCode      = "PostalCode"
)

const defaultStatus = "ACTIVE"

// SkippedListing records one raw listing excluded from a normalization pass.
type SkippedListing struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// NormalizationReport summarizes a pass: how many records made it through and
// which were skipped, with reasons.
type NormalizationReport struct {
	Processed int              `json:"processed"`
	Skipped   []SkippedListing `json:"skipped,omitempty"`
}

type listingTransformer struct {
	addr AddressFormatter
}

func NewListingTransformer(addr AddressFormatter) ListingTransformer {
	return &listingTransformer{addr: addr}
}

// NormalizeAll turns raw listings into canonical records, one per input that
// survives, in input order. A failing record is logged with its id, counted in
// the report, and never disturbs its siblings.
func (t *listingTransformer) NormalizeAll(rawListings []models.RawListing, rawPhotos []models.RawPhoto) ([]models.ProcessedListing, *NormalizationReport) {
	photoIndex := buildPhotoIndex(rawPhotos)

	listings := make([]models.ProcessedListing, 0, len(rawListings))
	report := &NormalizationReport{}

	for i := range rawListings {
		listing, err := t.normalizeOne(&rawListings[i], photoIndex)
		if err != nil {
			logger.GlobalLogger.Errorf("Skipping listing %s: %v", rawListings[i].ID, err)
			metrics.ListingsSkippedTotal.Inc()
			report.Skipped = append(report.Skipped, SkippedListing{ID: rawListings[i].ID, Reason: err.Error()})
			continue
		}
		listings = append(listings, *listing)
		report.Processed++
		metrics.ListingsNormalizedTotal.Inc()
	}

	return listings, report
}

// normalizeOne maps a single raw listing onto the canonical schema. Field
// failures degrade to the declared defaults; anything unexpected surfaces as
// an error so the caller can skip just this record.
func (t *listingTransformer) normalizeOne(raw *models.RawListing, photoIndex map[string][]string) (listing *models.ProcessedListing, err error) {
	defer func() {
		if r := recover(); r != nil {
			listing = nil
			err = fmt.Errorf("normalization panic: %v", r)
		}
	}()

	if raw.ID == "" {
		return nil, fmt.Errorf("missing listing id")
	}

	parts := t.addr.Format(raw.RawData)

	return &models.ProcessedListing{
		ID:           raw.ID,
		Address:      parts.Address,
		City:         parts.City,
		State:        parts.State,
		Price:        convertFloat(fieldValue(raw, fieldPrice), 0),
		Bedrooms:     convertFloat(fieldValue(raw, fieldBedrooms), 0),
		Bathrooms:    convertFloat(fieldValue(raw, fieldBathrooms), 0),
		SquareFeet:   convertFloat(fieldValue(raw, fieldSquareFeet), 0),
		PropertyType: convertString(fieldValue(raw, fieldPropertyType), ""),
		PhotoURLs:    resolvePhotos(raw.RawPhotoDataID, photoIndex),
		Status:       convertString(fieldValue(raw, fieldStatus), defaultStatus),
		CreatedAt:    convertTimestamp(raw.CreatedAt, ""),
		Latitude:     convertFloat(fieldValue(raw, fieldLatitude), 0),
		Longitude:    convertFloat(fieldValue(raw, fieldLongitude), 0),
		ZipCode:      convertString(fieldValue(raw, fieldZipCode), ""),
	}, nil
}

// buildPhotoIndex flattens photo groups by id, preserving group encounter
// order and intra-group URL order.
func buildPhotoIndex(rawPhotos []models.RawPhoto) map[string][]string {
	index := make(map[string][]string, len(rawPhotos))
	for _, photo := range rawPhotos {
		index[photo.ID] = append(index[photo.ID], photo.PhotoURLs...)
	}
	return index
}

// resolvePhotos looks up the photo group for a listing. A nil or unmatched
// group id yields an empty, never nil, slice.
func resolvePhotos(photoGroupID *string, photoIndex map[string][]string) []string {
	if photoGroupID == nil {
		return []string{}
	}
	urls := photoIndex[*photoGroupID]
	return append([]string{}, urls...)
}
