package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"homefeed-listings/internal/errors"
	"homefeed-listings/internal/models"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type filterValidator struct{}

func NewFilterValidator() FilterValidator {
	return &filterValidator{}
}

// ParseRangeFilter validates the raw query parameters of a filter request
// before any storage access. Dates are mandatory, prices optional; malformed
// input is rejected with a caller-visible AppError.
func (v *filterValidator) ParseRangeFilter(startDate, endDate, minPrice, maxPrice string) (*models.RangeFilter, error) {
	filter, err := v.ParseDateWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	filter.MinPrice, err = parsePrice("minPrice", minPrice)
	if err != nil {
		return nil, err
	}
	filter.MaxPrice, err = parsePrice("maxPrice", maxPrice)
	if err != nil {
		return nil, err
	}

	return filter, nil
}

// ParseDateWindow validates just the mandatory date pair.
func (v *filterValidator) ParseDateWindow(startDate, endDate string) (*models.RangeFilter, error) {
	start, err := parseDate("startDate", startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", endDate)
	if err != nil {
		return nil, err
	}
	return &models.RangeFilter{StartDate: start, EndDate: end}, nil
}

func parseDate(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.NewAppError(
			fmt.Sprintf("missing %s query parameter", name),
			errors.MsgInvalidDateRange,
			errors.ErrCodeInvalidDateRange,
			http.StatusBadRequest,
			nil,
		)
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.NewAppError(
		fmt.Sprintf("invalid %s value %q", name, value),
		errors.MsgInvalidDateRange,
		errors.ErrCodeInvalidDateRange,
		http.StatusBadRequest,
		nil,
	)
}

func parsePrice(name, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, errors.NewAppError(
			fmt.Sprintf("invalid %s value %q", name, value),
			errors.MsgInvalidPriceBound,
			errors.ErrCodeInvalidPriceBound,
			http.StatusBadRequest,
			err,
		)
	}
	return &parsed, nil
}
