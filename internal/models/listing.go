package models

// ProcessedListing is the canonical display-ready record produced by the
// normalizer. Field names and types are the serialization contract; numeric
// fields default to 0, photoUrls is never null.
type ProcessedListing struct {
	ID           string   `json:"id"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Price        float64  `json:"price"`
	Bedrooms     float64  `json:"bedrooms"`
	Bathrooms    float64  `json:"bathrooms"`
	SquareFeet   float64  `json:"squareFeet"`
	PropertyType string   `json:"propertyType"`
	PhotoURLs    []string `json:"photoUrls"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	ZipCode      string   `json:"zipCode"`
}

// Listing is a curated listing record managed through the CRUD endpoints.
type Listing struct {
	ID           string   `bson:"_id" json:"id"`
	Address      string   `bson:"address" json:"address"`
	City         string   `bson:"city" json:"city"`
	State        string   `bson:"state" json:"state"`
	Price        float64  `bson:"price" json:"price"`
	Bedrooms     float64  `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    float64  `bson:"bathrooms" json:"bathrooms"`
	SquareFeet   float64  `bson:"squareFeet" json:"squareFeet"`
	PropertyType string   `bson:"propertyType" json:"propertyType"`
	PhotoURLs    []string `bson:"photoUrls" json:"photoUrls"`
	Status       string   `bson:"status" json:"status"`
	CreatedAt    string   `bson:"createdAt" json:"createdAt"`
	Latitude     float64  `bson:"latitude" json:"latitude"`
	Longitude    float64  `bson:"longitude" json:"longitude"`
	ZipCode      string   `bson:"zipCode" json:"zipCode"`
}
