package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"nearme/internal/config"
	"nearme/internal/model"
)

// PlacesClient calls the Google Places API. Error classification lives at the
// orchestrator boundary; this client only reports transport failures and the
// provider's status field.
type PlacesClient struct {
	config     *config.GoogleConfig
	httpClient *http.Client
}

// NewPlacesClient creates a new Places API client.
func NewPlacesClient(cfg *config.GoogleConfig) *PlacesClient {
	return &PlacesClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// IsEnabled returns whether an API key is configured.
func (c *PlacesClient) IsEnabled() bool {
	return c.config.Enabled
}

// NearbySearch queries the Nearby Search endpoint with a keyword and radius
// filter around the given center.
func (c *PlacesClient) NearbySearch(ctx context.Context, center model.Coordinate, radiusMeters int, keyword string) (*NearbySearchResponse, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", center.Lat, center.Lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("keyword", keyword)
	params.Set("key", c.config.APIKey)

	endpoint := fmt.Sprintf("%s/maps/api/place/nearbysearch/json", c.config.APIBase)

	var resp NearbySearchResponse
	if err := c.getJSON(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}

	log.Debug().
		Str("keyword", keyword).
		Int("radius_m", radiusMeters).
		Int("results", len(resp.Results)).
		Str("status", resp.Status).
		Msg("Places nearby search completed")

	return &resp, nil
}

// Details fetches the detailed record for one place.
func (c *PlacesClient) Details(ctx context.Context, placeID string) (*DetailsResponse, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,opening_hours,photos,rating,user_ratings_total,geometry,types,reviews,price_level,vicinity")
	params.Set("key", c.config.APIKey)

	endpoint := fmt.Sprintf("%s/maps/api/place/details/json", c.config.APIBase)

	var resp DetailsResponse
	if err := c.getJSON(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Autocomplete fetches place predictions for a partial input.
func (c *PlacesClient) Autocomplete(ctx context.Context, input string) (*AutocompleteResponse, error) {
	params := url.Values{}
	params.Set("input", input)
	params.Set("key", c.config.APIKey)

	endpoint := fmt.Sprintf("%s/maps/api/place/autocomplete/json", c.config.APIBase)

	var resp AutocompleteResponse
	if err := c.getJSON(ctx, endpoint, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PhotoURL resolves a photo reference to a fetchable image URL.
func (c *PlacesClient) PhotoURL(photoReference string, maxWidth int) string {
	return fmt.Sprintf("%s/maps/api/place/photo?maxwidth=%d&photo_reference=%s&key=%s",
		c.config.APIBase, maxWidth, url.QueryEscape(photoReference), c.config.APIKey)
}

func (c *PlacesClient) getJSON(ctx context.Context, endpoint string, params url.Values, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Google Places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Google Places API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}
