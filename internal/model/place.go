package model

// Coordinate is a WGS84 point. Latitude must be within [-90, 90] and
// longitude within [-180, 180]; values are never mutated after a geolocation
// reading or user selection produced them.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is the application-owned, normalized place representation built from
// a raw provider record. Created fresh on every search response.
type Place struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Rating      float64    `json:"rating"`
	ReviewCount int        `json:"reviewCount"`
	Distance    string     `json:"distance"`
	DistanceKm  float64    `json:"distanceValue"`
	Image       string     `json:"image"`
	Price       string     `json:"price"`
	IsOpen      bool       `json:"isOpen"`
	Address     string     `json:"address,omitempty"`
	PlaceID     string     `json:"placeId"`
	Location    Coordinate `json:"location"`
}

// PlaceDetails is the extended shape returned by the place-details endpoint.
type PlaceDetails struct {
	Place
	Phone       string   `json:"phone,omitempty"`
	Website     string   `json:"website,omitempty"`
	Hours       string   `json:"hours,omitempty"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// Review is a user review attached to place details.
type Review struct {
	ID      int64   `json:"id"`
	Author  string  `json:"author"`
	Avatar  string  `json:"avatar,omitempty"`
	Rating  float64 `json:"rating"`
	Date    string  `json:"date"`
	Text    string  `json:"text"`
	Helpful int     `json:"helpful"`
}
