package models

import "time"

// RawListing is one vendor feed row as stored by the ingestion process.
// RawData is the untyped vendor payload; the remaining fields are the flat
// relational columns that exist alongside it. Records are read-only here.
type RawListing struct {
	ID              string                 `bson:"_id" json:"id"`
	RawData         map[string]interface{} `bson:"rawData,omitempty" json:"rawData,omitempty"`
	CreatedAt       time.Time              `bson:"createdAt" json:"createdAt"`
	RawPhotoDataID  *string                `bson:"rawPhotoDataId,omitempty" json:"rawPhotoDataId,omitempty"`
	UnparsedAddress *string                `bson:"unparsedAddress,omitempty" json:"unparsedAddress,omitempty"`
	PostalCode      *string                `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
}

// RawPhoto is a photo group tied to a raw listing by RawPhotoDataID.
type RawPhoto struct {
	ID           string   `bson:"_id" json:"id"`
	RawListingID string   `bson:"rawListingId" json:"rawListingId"`
	PhotoURLs    []string `bson:"photoUrls" json:"photoUrls"`
}
