package cache

import (
	"fmt"
	"time"
)

// cache key for a single curated listing.
func ListingKey(id string) string {
	return fmt.Sprintf("listing:%s", id)
}

// cache key for the recent-listings page.
func RecentListingsKey(limit int) string {
	return fmt.Sprintf("listings:recent:limit:%d", limit)
}

// cache key for a date-window listing count.
func FilterCountKey(start, end time.Time) string {
	return fmt.Sprintf("listings:count:%d:%d", start.Unix(), end.Unix())
}
