package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nearme/internal/data"
)

// FeaturedHandler serves the static demo places.
type FeaturedHandler struct{}

// NewFeaturedHandler creates a new featured-places handler.
func NewFeaturedHandler() *FeaturedHandler {
	return &FeaturedHandler{}
}

// List handles GET /api/featured
func (h *FeaturedHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"places":  data.FeaturedPlaces,
		"count":   len(data.FeaturedPlaces),
	})
}
