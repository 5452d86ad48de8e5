package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nearme/internal/config"
	"nearme/internal/service"
)

func newPlacesRouter(t *testing.T, baseURL string, enabled bool) *gin.Engine {
	t.Helper()

	cfg := &config.GoogleConfig{
		APIKey:  "test-key",
		APIBase: baseURL,
		Timeout: 2 * time.Second,
		Enabled: enabled,
	}
	places := service.NewPlacesClient(cfg)
	transformer := service.NewPlaceTransformer(places)
	geocoder := service.NewGeocoder(cfg)

	h := NewPlacesHandler(places, transformer, geocoder)

	router := gin.New()
	router.GET("/api/place-details", h.Details)
	router.GET("/api/places-autocomplete", h.Autocomplete)
	router.POST("/api/reverse-geocode", h.ReverseGeocode)
	return router
}

func TestPlaceDetailsEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		assert.Equal(t, "place-1", r.URL.Query().Get("place_id"))
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"name": "Fancy Diner",
				"formatted_address": "12 Hill Road, Bandra West",
				"formatted_phone_number": "+91 98765 43210",
				"rating": 4.6,
				"user_ratings_total": 812,
				"types": ["restaurant"]
			}
		}`))
	}))
	defer server.Close()

	router := newPlacesRouter(t, server.URL, true)
	w := doJSON(router, "GET", "/api/place-details?placeId=place-1", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Place   struct {
			Name    string  `json:"name"`
			Rating  float64 `json:"rating"`
			Phone   string  `json:"phone"`
			Address string  `json:"address"`
		} `json:"place"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Fancy Diner", body.Place.Name)
	assert.Equal(t, 4.6, body.Place.Rating)
	assert.Equal(t, "+91 98765 43210", body.Place.Phone)
	assert.Equal(t, "12 Hill Road, Bandra West", body.Place.Address)
}

func TestPlaceDetailsRequiresPlaceID(t *testing.T) {
	router := newPlacesRouter(t, "https://maps.example.com", true)

	w := doJSON(router, "GET", "/api/place-details", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceDetailsMissingKey(t *testing.T) {
	router := newPlacesRouter(t, "https://maps.example.com", false)

	w := doJSON(router, "GET", "/api/place-details?placeId=place-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Google API Key")
}

func TestPlaceDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	}))
	defer server.Close()

	router := newPlacesRouter(t, server.URL, true)
	w := doJSON(router, "GET", "/api/place-details?placeId=missing", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestAutocompleteEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/place/autocomplete/json", r.URL.Path)
		assert.Equal(t, "band", r.URL.Query().Get("input"))
		w.Write([]byte(`{
			"status": "OK",
			"predictions": [
				{"description": "Bandra West, Mumbai", "place_id": "b1"},
				{"description": "Bandra East, Mumbai", "place_id": "b2"}
			]
		}`))
	}))
	defer server.Close()

	router := newPlacesRouter(t, server.URL, true)
	w := doJSON(router, "GET", "/api/places-autocomplete?input=band", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success     bool `json:"success"`
		Predictions []struct {
			Description string `json:"description"`
			PlaceID     string `json:"place_id"`
		} `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Predictions, 2)
	assert.Equal(t, "Bandra West, Mumbai", body.Predictions[0].Description)
}

func TestAutocompleteEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS"}`))
	}))
	defer server.Close()

	router := newPlacesRouter(t, server.URL, true)
	w := doJSON(router, "GET", "/api/places-autocomplete?input=zzz", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"predictions":[]`)
}

func TestReverseGeocodeEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Mumbai, Maharashtra, India",
				"address_components": [
					{"long_name": "Mumbai", "short_name": "Mumbai", "types": ["locality"]},
					{"long_name": "Maharashtra", "short_name": "MH", "types": ["administrative_area_level_1"]}
				]
			}]
		}`))
	}))
	defer server.Close()

	router := newPlacesRouter(t, server.URL, true)
	w := doJSON(router, "POST", "/api/reverse-geocode", gin.H{"lat": 19.0760, "lng": 72.8777})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mumbai, MH")
}

func TestReverseGeocodeRequiresCoordinates(t *testing.T) {
	router := newPlacesRouter(t, "https://maps.example.com", true)

	w := doJSON(router, "POST", "/api/reverse-geocode", gin.H{"lat": 19.0760})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
