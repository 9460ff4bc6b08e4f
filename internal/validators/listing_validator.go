package validators

import (
	"fmt"

	"homefeed-listings/internal/models"
)

type listingValidator struct{}

func NewListingValidator() ListingValidator {
	return &listingValidator{}
}

func (v *listingValidator) ValidateCreate(listing *models.Listing) error {
	if listing.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}

func (v *listingValidator) ValidateUpdate(listing *models.Listing) error {
	if listing.ID == "" {
		return fmt.Errorf("listing id is required")
	}
	if listing.Address == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}
