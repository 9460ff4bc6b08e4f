package handlers

import (
	"net/http"

	"homefeed-listings/internal/models"
	"homefeed-listings/internal/services"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GetListings serves a single listing by id, a search result set, or every
// listing, depending on which query parameters are present.
func (h *ListingHandler) GetListings(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		listing, err := h.listingService.GetListingByID(c.Request.Context(), id)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, listing)
		return
	}

	listings, err := h.listingService.GetListings(c.Request.Context(), c.Query("query"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetListingByID(c *gin.Context) {
	listing, err := h.listingService.GetListingByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GetRecentListings serves the dashboard's newest-first listing page.
func (h *ListingHandler) GetRecentListings(c *gin.Context) {
	listings, err := h.listingService.GetRecentListings(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) CreateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.listingService.CreateListing(c.Request.Context(), &listing); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}

func (h *ListingHandler) UpdateListing(c *gin.Context) {
	var listing models.Listing
	if err := c.ShouldBindJSON(&listing); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.listingService.UpdateListing(c.Request.Context(), &listing); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(c *gin.Context) {
	if err := h.listingService.DeleteListing(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Listing deleted successfully"})
}
