package models

import "time"

// RangeFilter carries one filter request: a mandatory creation-date window and
// optional, independently nullable price bounds. StartDate <= EndDate is the
// caller's responsibility.
type RangeFilter struct {
	StartDate time.Time
	EndDate   time.Time
	MinPrice  *float64
	MaxPrice  *float64
}

// PriceBoundKind enumerates which price bounds a RangeFilter carries, so each
// of the four cases can be built and tested on its own.
type PriceBoundKind int

const (
	PriceUnbounded PriceBoundKind = iota
	PriceMinOnly
	PriceMaxOnly
	PriceBetween
)

// PriceBound reports which of the four bound shapes this filter describes.
func (f *RangeFilter) PriceBound() PriceBoundKind {
	switch {
	case f.MinPrice != nil && f.MaxPrice != nil:
		return PriceBetween
	case f.MinPrice != nil:
		return PriceMinOnly
	case f.MaxPrice != nil:
		return PriceMaxOnly
	default:
		return PriceUnbounded
	}
}
