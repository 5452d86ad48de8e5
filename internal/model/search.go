package model

// SearchRequest is the body of POST /api/search-ai.
type SearchRequest struct {
	Query  string  `json:"query"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Vibe   string  `json:"vibe,omitempty"`
	Radius int     `json:"radius,omitempty"`
}

// SearchResultSet is the ordered outcome of one orchestrated search, together
// with the inputs that produced it. Ordering is provider relevance; sorting
// and pagination never mutate the set itself.
type SearchResultSet struct {
	SearchID string       `json:"searchId"`
	Query    string       `json:"query"`
	Vibe     string       `json:"vibe,omitempty"`
	Origin   Coordinate   `json:"location"`
	Intent   SearchIntent `json:"aiInsights"`
	Places   []Place      `json:"places"`
}

// SortMode selects the ordering applied over a result set.
type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortDistance  SortMode = "distance"
	SortRating    SortMode = "rating"
	SortReviews   SortMode = "reviews"
)

// FeedbackRequest records a user action against a search result.
type FeedbackRequest struct {
	SearchID string `json:"searchId" binding:"required"`
	PlaceID  string `json:"placeId" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// ReverseGeocodeRequest is the body of POST /api/reverse-geocode.
type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
