package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nearme/internal/model"
	"nearme/internal/service"
)

// PlacesHandler exposes place details, autocomplete and reverse geocoding.
type PlacesHandler struct {
	places    *service.PlacesClient
	transform *service.PlaceTransformer
	geocoder  *service.Geocoder
}

// NewPlacesHandler creates a new places handler.
func NewPlacesHandler(places *service.PlacesClient, transform *service.PlaceTransformer, geocoder *service.Geocoder) *PlacesHandler {
	return &PlacesHandler{
		places:    places,
		transform: transform,
		geocoder:  geocoder,
	}
}

// Details handles GET /api/place-details
func (h *PlacesHandler) Details(c *gin.Context) {
	placeID := c.Query("placeId")
	if placeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: placeId"})
		return
	}

	if !h.places.IsEnabled() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: Missing Google API Key"})
		return
	}

	resp, err := h.places.Details(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place details"})
		return
	}

	if resp.Status != "OK" || resp.Result == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch place details", "details": resp.Status})
		return
	}

	place := h.transform.ToPlaceDetails(*resp.Result, placeID)
	c.JSON(http.StatusOK, gin.H{"success": true, "place": place})
}

// Autocomplete handles GET /api/places-autocomplete
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameter: input"})
		return
	}

	if !h.places.IsEnabled() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error: Missing Google API Key"})
		return
	}

	resp, err := h.places.Autocomplete(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions"})
		return
	}

	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch suggestions", "details": resp.Status})
		return
	}

	predictions := resp.Predictions
	if predictions == nil {
		predictions = []service.Prediction{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "predictions": predictions})
}

// ReverseGeocode handles POST /api/reverse-geocode
func (h *PlacesHandler) ReverseGeocode(c *gin.Context) {
	var req model.ReverseGeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	if req.Lat == 0 || req.Lng == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing lat or lng"})
		return
	}

	if !h.geocoder.IsEnabled() {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "API key not configured"})
		return
	}

	name := h.geocoder.ReverseGeocode(c.Request.Context(), model.Coordinate{Lat: req.Lat, Lng: req.Lng})
	c.JSON(http.StatusOK, gin.H{"success": true, "locationName": name})
}
