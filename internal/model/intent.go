package model

// SearchIntent is the structured intent extracted from a free-text query.
// Keywords falls back to the raw query text when AI extraction is unavailable.
type SearchIntent struct {
	PlaceType string `json:"placeType,omitempty"`
	Keywords  string `json:"keywords,omitempty"`
	Category  string `json:"category,omitempty"`
}

// IsEmpty reports whether extraction yielded nothing usable.
func (i SearchIntent) IsEmpty() bool {
	return i.PlaceType == "" && i.Keywords == "" && i.Category == ""
}
