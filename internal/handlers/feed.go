package handlers

import (
	"net/http"

	"homefeed-listings/internal/services"
	"homefeed-listings/internal/validators"

	"github.com/gin-gonic/gin"
)

// FeedHandler exposes the filtered normalization pipeline.
type FeedHandler struct {
	filterService *services.FilterService
	validator     validators.FilterValidator
}

func NewFeedHandler(filterService *services.FilterService, validator validators.FilterValidator) *FeedHandler {
	return &FeedHandler{
		filterService: filterService,
		validator:     validator,
	}
}

// FilterListings returns the canonical listing set for a mandatory date window
// and optional price bounds. Malformed parameters are rejected up front;
// malformed records inside the window are skipped, never a request failure.
func (h *FeedHandler) FilterListings(c *gin.Context) {
	filter, err := h.validator.ParseRangeFilter(
		c.Query("startDate"),
		c.Query("endDate"),
		c.Query("minPrice"),
		c.Query("maxPrice"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	listings, _, err := h.filterService.FilterListings(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

// CountListings returns the number of raw listings inside the date window.
func (h *FeedHandler) CountListings(c *gin.Context) {
	filter, err := h.validator.ParseDateWindow(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		c.Error(err)
		return
	}

	count, err := h.filterService.CountListings(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
