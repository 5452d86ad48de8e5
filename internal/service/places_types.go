package service

// NearbySearchResponse represents the Google Places Nearby Search API response.
type NearbySearchResponse struct {
	Results      []PlaceResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

// PlaceResult represents a single place result from the Places API.
type PlaceResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address,omitempty"`
	Vicinity         string        `json:"vicinity,omitempty"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Photos           []Photo       `json:"photos,omitempty"`
	PriceLevel       int           `json:"price_level,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	Types            []string      `json:"types,omitempty"`
	UserRatingsTotal int           `json:"user_ratings_total,omitempty"`
}

// Geometry represents the geometry information of a place.
type Geometry struct {
	Location *LatLng `json:"location,omitempty"`
}

// LatLng represents a geographic coordinate.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OpeningHours represents the opening hours of a place.
type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Photo represents a place photo reference.
type Photo struct {
	Height         int    `json:"height"`
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
}

// DetailsResponse represents the Place Details API response.
type DetailsResponse struct {
	Result       *DetailsResult `json:"result,omitempty"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}

// DetailsResult is the detailed record returned for one place.
type DetailsResult struct {
	PlaceResult
	FormattedPhoneNumber string            `json:"formatted_phone_number,omitempty"`
	Website              string            `json:"website,omitempty"`
	Reviews              []PlaceReview     `json:"reviews,omitempty"`
	EditorialSummary     *EditorialSummary `json:"editorial_summary,omitempty"`
}

// PlaceReview is a user review from the Place Details API.
type PlaceReview struct {
	AuthorName              string  `json:"author_name"`
	ProfilePhotoURL         string  `json:"profile_photo_url,omitempty"`
	Rating                  float64 `json:"rating"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Text                    string  `json:"text"`
	Time                    int64   `json:"time"`
}

// EditorialSummary is Google's short description of a place.
type EditorialSummary struct {
	Overview string `json:"overview,omitempty"`
}

// AutocompleteResponse represents the Place Autocomplete API response.
type AutocompleteResponse struct {
	Predictions  []Prediction `json:"predictions"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// Prediction is a single autocomplete suggestion, passed through to clients
// unchanged.
type Prediction struct {
	Description          string   `json:"description"`
	PlaceID              string   `json:"place_id"`
	Types                []string `json:"types,omitempty"`
	StructuredFormatting *struct {
		MainText      string `json:"main_text"`
		SecondaryText string `json:"secondary_text,omitempty"`
	} `json:"structured_formatting,omitempty"`
}
