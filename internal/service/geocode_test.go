package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"nearme/internal/config"
	"nearme/internal/model"
)

func newTestGeocoder(baseURL string) *Geocoder {
	return NewGeocoder(&config.GoogleConfig{
		APIKey:  "test-key",
		APIBase: baseURL,
		Timeout: 2 * time.Second,
		Enabled: true,
	})
}

func geocodeServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestReverseGeocodeFullLadder(t *testing.T) {
	server := geocodeServer(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "Hill Road, Bandra West, Mumbai, Maharashtra 400050, India",
			"address_components": [
				{"long_name": "Bandra West", "short_name": "Bandra W", "types": ["sublocality_level_1", "sublocality", "political"]},
				{"long_name": "Mumbai", "short_name": "Mumbai", "types": ["locality", "political"]},
				{"long_name": "Maharashtra", "short_name": "MH", "types": ["administrative_area_level_1", "political"]}
			]
		}]
	}`)
	defer server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 19.0596, Lng: 72.8295})

	assert.Equal(t, "Bandra West, Mumbai, MH", name)
}

func TestReverseGeocodeCityAndState(t *testing.T) {
	server := geocodeServer(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "Mumbai, Maharashtra, India",
			"address_components": [
				{"long_name": "Mumbai", "short_name": "Mumbai", "types": ["locality", "political"]},
				{"long_name": "Maharashtra", "short_name": "MH", "types": ["administrative_area_level_1", "political"]}
			]
		}]
	}`)
	defer server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 19.0760, Lng: 72.8777})

	assert.Equal(t, "Mumbai, MH", name)
}

func TestReverseGeocodeCityOnly(t *testing.T) {
	server := geocodeServer(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "Mumbai, India",
			"address_components": [
				{"long_name": "Mumbai", "short_name": "Mumbai", "types": ["locality", "political"]}
			]
		}]
	}`)
	defer server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 19.0760, Lng: 72.8777})

	assert.Equal(t, "Mumbai", name)
}

func TestReverseGeocodeDistrictFallback(t *testing.T) {
	// No locality: administrative_area_level_2 stands in for the city.
	server := geocodeServer(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "Thane, Maharashtra, India",
			"address_components": [
				{"long_name": "Thane", "short_name": "Thane", "types": ["administrative_area_level_2", "political"]},
				{"long_name": "Maharashtra", "short_name": "MH", "types": ["administrative_area_level_1", "political"]}
			]
		}]
	}`)
	defer server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 19.2183, Lng: 72.9781})

	assert.Equal(t, "Thane, MH", name)
}

func TestReverseGeocodeFormattedAddressFallback(t *testing.T) {
	server := geocodeServer(t, `{
		"status": "OK",
		"results": [{
			"formatted_address": "Unnamed Road, Somewhere, India",
			"address_components": []
		}]
	}`)
	defer server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 21.0, Lng: 78.0})

	assert.Equal(t, "Unnamed Road, Somewhere", name)
}

func TestReverseGeocodeNoResults(t *testing.T) {
	server := geocodeServer(t, `{"status": "ZERO_RESULTS", "results": []}`)
	defer server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 19.0760, Lng: 72.8777})

	assert.Equal(t, "19.0760°N, 72.8777°E", name)
}

func TestReverseGeocodeProviderDown(t *testing.T) {
	server := geocodeServer(t, `{"status": "OK"`)
	server.Close()

	g := newTestGeocoder(server.URL)
	name := g.ReverseGeocode(context.Background(), model.Coordinate{Lat: 12.9716, Lng: 77.5946})

	assert.Equal(t, "12.9716°N, 77.5946°E", name)
}

func TestCoordinateLabel(t *testing.T) {
	label := CoordinateLabel(model.Coordinate{Lat: 19.076, Lng: 72.8777})
	assert.Equal(t, "19.0760°N, 72.8777°E", label)
}
