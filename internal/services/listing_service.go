package services

import (
	"context"
	"fmt"
	"time"

	"homefeed-listings/internal/models"
	"homefeed-listings/internal/repositories"
	"homefeed-listings/internal/validators"
	"homefeed-listings/pkg/cache"
	"homefeed-listings/pkg/logger"

	"github.com/google/uuid"
)

const (
	// RecentListingsLimit matches the dashboard page size.
	RecentListingsLimit = 10

	listingTTL = time.Hour
	recentTTL  = time.Minute
)

type ListingService struct {
	repo      repositories.ListingRepository
	cache     repositories.ListingCache
	validator validators.ListingValidator
}

func NewListingService(
	repo repositories.ListingRepository,
	listingCache repositories.ListingCache,
	validator validators.ListingValidator,
) *ListingService {
	return &ListingService{
		repo:      repo,
		cache:     listingCache,
		validator: validator,
	}
}

func (s *ListingService) CreateListing(ctx context.Context, listing *models.Listing) error {
	if err := s.validator.ValidateCreate(listing); err != nil {
		return err
	}

	if listing.ID == "" {
		listing.ID = uuid.NewString()
	}
	if listing.CreatedAt == "" {
		listing.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if listing.PhotoURLs == nil {
		listing.PhotoURLs = []string{}
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return err
	}

	_ = s.cache.SetListing(ctx, cache.ListingKey(listing.ID), listing, listingTTL)
	s.invalidateRecent(ctx)
	return nil
}

func (s *ListingService) UpdateListing(ctx context.Context, listing *models.Listing) error {
	if err := s.validator.ValidateUpdate(listing); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, listing); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.ListingKey(listing.ID))
	s.invalidateRecent(ctx)
	return nil
}

func (s *ListingService) DeleteListing(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("listing id is required")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.ListingKey(id))
	s.invalidateRecent(ctx)
	return nil
}

func (s *ListingService) GetListingByID(ctx context.Context, id string) (*models.Listing, error) {
	key := cache.ListingKey(id)
	if cached, err := s.cache.GetListing(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	listing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, fmt.Errorf("listing not found")
	}

	_ = s.cache.SetListing(ctx, key, listing, listingTTL)
	return listing, nil
}

// GetRecentListings returns the newest listings, newest first, served from the
// cache when fresh.
func (s *ListingService) GetRecentListings(ctx context.Context) ([]models.Listing, error) {
	key := cache.RecentListingsKey(RecentListingsLimit)
	if cached, err := s.cache.GetRecent(ctx, key); err == nil && cached != nil {
		return cached, nil
	}

	listings, err := s.repo.FindRecent(ctx, RecentListingsLimit)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}

	_ = s.cache.SetRecent(ctx, key, listings, recentTTL)
	return listings, nil
}

// GetListings returns all listings, or those matching the query when one is
// supplied.
func (s *ListingService) GetListings(ctx context.Context, query string) ([]models.Listing, error) {
	var (
		listings []models.Listing
		err      error
	)
	if query == "" {
		listings, err = s.repo.FindAll(ctx)
	} else {
		listings, err = s.repo.Search(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

func (s *ListingService) invalidateRecent(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.RecentListingsKey(RecentListingsLimit)); err != nil {
		logger.GlobalLogger.Debugf("Failed to invalidate recent listings cache: %v", err)
	}
}
