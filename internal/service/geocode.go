package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"nearme/internal/config"
	"nearme/internal/model"
)

// Geocoder resolves coordinates to human-readable location names via the
// Google Geocoding API. It never fails hard: any provider error degrades to
// the formatted coordinate pair.
type Geocoder struct {
	config     *config.GoogleConfig
	httpClient *http.Client
}

// NewGeocoder creates a new reverse geocoder.
func NewGeocoder(cfg *config.GoogleConfig) *Geocoder {
	return &Geocoder{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// IsEnabled returns whether an API key is configured.
func (g *Geocoder) IsEnabled() bool {
	return g.config.Enabled
}

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	AddressComponents []addressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// ReverseGeocode returns a display name for the coordinate.
func (g *Geocoder) ReverseGeocode(ctx context.Context, coord model.Coordinate) string {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", coord.Lat, coord.Lng))
	params.Set("key", g.config.APIKey)

	endpoint := fmt.Sprintf("%s/maps/api/geocode/json", g.config.APIBase)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return CoordinateLabel(coord)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("Reverse geocoding request failed")
		return CoordinateLabel(coord)
	}
	defer resp.Body.Close()

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Warn().Err(err).Msg("Failed to decode reverse geocoding response")
		return CoordinateLabel(coord)
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		return CoordinateLabel(coord)
	}

	if name := locationName(data.Results[0]); name != "" {
		return name
	}
	return CoordinateLabel(coord)
}

// locationName resolves address components by priority: sublocality combined
// with locality and state, then city/state pairs, then the first two segments
// of the formatted address.
func locationName(result geocodeResult) string {
	var city, state, area string

	for _, component := range result.AddressComponents {
		switch {
		case hasType(component, "locality"):
			city = component.LongName
		case hasType(component, "administrative_area_level_2") && city == "":
			city = component.LongName
		case hasType(component, "administrative_area_level_1"):
			state = component.ShortName
		case hasType(component, "sublocality") || hasType(component, "sublocality_level_1"):
			area = component.LongName
		}
	}

	switch {
	case area != "" && city != "" && state != "":
		return fmt.Sprintf("%s, %s, %s", area, city, state)
	case city != "" && state != "":
		return fmt.Sprintf("%s, %s", city, state)
	case city != "":
		return city
	case state != "":
		return state
	}

	parts := strings.Split(result.FormattedAddress, ",")
	if len(parts) >= 2 {
		return fmt.Sprintf("%s, %s", strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
	}
	return strings.TrimSpace(parts[0])
}

func hasType(component addressComponent, t string) bool {
	for _, ct := range component.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// CoordinateLabel formats a coordinate pair as the display fallback.
func CoordinateLabel(coord model.Coordinate) string {
	return fmt.Sprintf("%.4f°N, %.4f°E", coord.Lat, coord.Lng)
}
