package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"nearme/internal/model"
)

// ErrInvalidInput reports missing query or origin; no provider call is made.
var ErrInvalidInput = errors.New("invalid search input")

// IntentSource extracts structured intent from free text.
type IntentSource interface {
	Extract(ctx context.Context, query, vibe string) (model.SearchIntent, error)
}

// PlaceSource looks up candidate places around a coordinate.
type PlaceSource interface {
	NearbySearch(ctx context.Context, center model.Coordinate, radiusMeters int, keyword string) (*NearbySearchResponse, error)
}

// SearchLogger records completed searches for later analysis.
type SearchLogger interface {
	LogSearch(ctx context.Context, set *model.SearchResultSet, tookMs int64) error
}

// SearchParams are the inputs of one orchestrated search.
type SearchParams struct {
	Query        string
	Origin       model.Coordinate
	Vibe         string
	RadiusMeters int
}

// SearchService coordinates intent extraction, place lookup and
// transformation, and classifies upstream failures into the API error
// taxonomy. All classification happens here; the collaborators below return
// raw status/error shapes.
type SearchService struct {
	intent     IntentSource
	places     PlaceSource
	transform  *PlaceTransformer
	logger     SearchLogger // nil when persistence is not configured
	maxResults int
}

// NewSearchService creates a new search service.
func NewSearchService(intent IntentSource, places PlaceSource, transform *PlaceTransformer, logger SearchLogger, maxResults int) *SearchService {
	return &SearchService{
		intent:     intent,
		places:     places,
		transform:  transform,
		logger:     logger,
		maxResults: maxResults,
	}
}

// Search runs the full pipeline: intent extraction, nearby lookup, then
// normalization into an ordered result set capped at maxResults. The intent
// call always completes before the lookup begins.
//
// notify=false is the silent variant used by the live refresher: the same
// classification and result, without user-facing log noise.
func (s *SearchService) Search(ctx context.Context, p SearchParams, notify bool) (*model.SearchResultSet, error) {
	startTime := time.Now()

	if strings.TrimSpace(p.Query) == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if p.Origin.Lat == 0 && p.Origin.Lng == 0 {
		return nil, fmt.Errorf("%w: origin coordinates are required", ErrInvalidInput)
	}

	intent, err := s.intent.Extract(ctx, p.Query, p.Vibe)
	if err != nil {
		// Quota exhaustion on the language model is surfaced, never
		// silently recovered.
		return nil, model.NewIntentQuotaError()
	}

	keywords := intent.Keywords
	if keywords == "" {
		keywords = p.Query
	}

	resp, err := s.places.NearbySearch(ctx, p.Origin, p.RadiusMeters, keywords)
	if err != nil {
		return nil, model.NewGenericError("Failed to fetch places")
	}

	switch resp.Status {
	case "OK", "ZERO_RESULTS":
		// Zero results is a valid, empty outcome.
	case "OVER_QUERY_LIMIT", "REQUEST_DENIED":
		return nil, model.NewLookupQuotaError(resp.Status)
	default:
		log.Error().Str("status", resp.Status).Str("error_message", resp.ErrorMessage).Msg("Places API error")
		return nil, model.NewGenericError("Failed to fetch places")
	}

	results := resp.Results
	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}

	places := make([]model.Place, 0, len(results))
	for _, raw := range results {
		places = append(places, s.transform.ToPlace(raw, p.Origin, intent.Category))
	}

	set := &model.SearchResultSet{
		SearchID: uuid.NewString(),
		Query:    p.Query,
		Vibe:     p.Vibe,
		Origin:   p.Origin,
		Intent:   intent,
		Places:   places,
	}

	took := time.Since(startTime).Milliseconds()

	if s.logger != nil {
		// Non-blocking; search logging must not delay the response.
		go func() {
			if err := s.logger.LogSearch(context.Background(), set, took); err != nil {
				log.Warn().Err(err).Msg("Failed to log search")
			}
		}()
	}

	evt := log.Debug()
	if notify {
		evt = log.Info()
	}
	evt.Str("query", p.Query).
		Str("vibe", p.Vibe).
		Int("count", len(places)).
		Int64("took_ms", took).
		Msg("Search completed")

	return set, nil
}
