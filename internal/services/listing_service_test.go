package services

import (
	"context"
	"fmt"
	"testing"

	"homefeed-listings/internal/models"
	"homefeed-listings/internal/validators"
)

type stubListingRepo struct {
	byID    map[string]*models.Listing
	created []*models.Listing
}

func (s *stubListingRepo) FindByID(ctx context.Context, id string) (*models.Listing, error) {
	return s.byID[id], nil
}
func (s *stubListingRepo) FindAll(ctx context.Context) ([]models.Listing, error) {
	var all []models.Listing
	for _, l := range s.byID {
		all = append(all, *l)
	}
	return all, nil
}
func (s *stubListingRepo) FindRecent(ctx context.Context, limit int) ([]models.Listing, error) {
	return nil, nil
}
func (s *stubListingRepo) Search(ctx context.Context, query string) ([]models.Listing, error) {
	var matched []models.Listing
	for _, l := range s.byID {
		if l.City == query {
			matched = append(matched, *l)
		}
	}
	return matched, nil
}
func (s *stubListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	s.created = append(s.created, listing)
	return nil
}
func (s *stubListingRepo) Update(ctx context.Context, listing *models.Listing) error {
	if _, ok := s.byID[listing.ID]; !ok {
		return fmt.Errorf("listing not found")
	}
	return nil
}
func (s *stubListingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("listing not found")
	}
	delete(s.byID, id)
	return nil
}

func newListingFixture(repo *stubListingRepo) *ListingService {
	return NewListingService(repo, &stubListingCache{}, validators.NewListingValidator())
}

func TestCreateListingFillsDefaults(t *testing.T) {
	repo := &stubListingRepo{}
	svc := newListingFixture(repo)

	listing := &models.Listing{Address: "12 Main Street, Austin, TX, 78701"}
	if err := svc.CreateListing(context.Background(), listing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if listing.ID == "" {
		t.Error("expected a generated id")
	}
	if listing.CreatedAt == "" {
		t.Error("expected a createdAt timestamp")
	}
	if listing.PhotoURLs == nil {
		t.Error("PhotoURLs must never be nil")
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d listings; want 1", len(repo.created))
	}
}

func TestCreateListingRequiresAddress(t *testing.T) {
	svc := newListingFixture(&stubListingRepo{})

	err := svc.CreateListing(context.Background(), &models.Listing{})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGetListingByIDNotFound(t *testing.T) {
	svc := newListingFixture(&stubListingRepo{byID: map[string]*models.Listing{}})

	if _, err := svc.GetListingByID(context.Background(), "missing"); err == nil {
		t.Fatal("expected not-found error")
	}
}

func TestGetListingsWithAndWithoutQuery(t *testing.T) {
	repo := &stubListingRepo{byID: map[string]*models.Listing{
		"a": {ID: "a", Address: "12 Main Street, Austin, TX, 78701", City: "Austin"},
		"b": {ID: "b", Address: "400 Oak, Dallas, TX, 75201", City: "Dallas"},
	}}
	svc := newListingFixture(repo)

	all, err := svc.GetListings(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d listings without a query; want 2", len(all))
	}

	matched, err := svc.GetListings(context.Background(), "Austin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matched) != 1 || matched[0].ID != "a" {
		t.Errorf("got %v for query Austin; want the Austin listing", matched)
	}
}

func TestDeleteListingRequiresID(t *testing.T) {
	svc := newListingFixture(&stubListingRepo{})

	if err := svc.DeleteListing(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing id")
	}
}
