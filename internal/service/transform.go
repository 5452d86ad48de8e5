package service

import (
	"fmt"
	"strings"

	"nearme/internal/geo"
	"nearme/internal/model"
)

// Image served when a place carries no photo reference.
const placeholderImageURL = "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800&h=600&fit=crop"

const currencyGlyph = "₹"

// PlaceTransformer maps raw provider place records into the application's
// normalized Place representation. Provider shape coupling (rating, price and
// open-state defaults) is isolated here so a provider swap only touches this
// mapping.
type PlaceTransformer struct {
	places *PlacesClient
}

// NewPlaceTransformer creates a new place transformer.
func NewPlaceTransformer(places *PlacesClient) *PlaceTransformer {
	return &PlaceTransformer{places: places}
}

// ToPlace normalizes one raw place. fallbackCategory (usually the extracted
// intent's category) applies when the record carries no type tags.
func (t *PlaceTransformer) ToPlace(raw PlaceResult, origin model.Coordinate, fallbackCategory string) model.Place {
	location := origin
	if raw.Geometry != nil && raw.Geometry.Location != nil {
		location = model.Coordinate{Lat: raw.Geometry.Location.Lat, Lng: raw.Geometry.Location.Lng}
	}
	distance := geo.DistanceKm(origin, location)

	return model.Place{
		ID:          raw.PlaceID,
		Name:        raw.Name,
		Category:    categoryLabel(raw.Types, fallbackCategory),
		Rating:      ratingOrDefault(raw.Rating),
		ReviewCount: raw.UserRatingsTotal,
		Distance:    fmt.Sprintf("%.1f km", distance),
		DistanceKm:  distance,
		Image:       t.imageURL(raw.Photos, 800),
		Price:       priceLabel(raw.PriceLevel),
		IsOpen:      openOrDefault(raw.OpeningHours),
		Address:     raw.Vicinity,
		PlaceID:     raw.PlaceID,
		Location:    location,
	}
}

// ToPlaceDetails shapes a Place Details result for the details endpoint.
// Distance is left empty; the caller has no origin to measure from.
func (t *PlaceTransformer) ToPlaceDetails(raw DetailsResult, placeID string) model.PlaceDetails {
	category := categoryLabel(raw.Types, "")

	address := raw.FormattedAddress
	if address == "" {
		address = raw.Vicinity
	}

	details := model.PlaceDetails{
		Place: model.Place{
			ID:          placeID,
			Name:        raw.Name,
			Category:    category,
			Rating:      raw.Rating,
			ReviewCount: raw.UserRatingsTotal,
			Image:       t.imageURL(raw.Photos, 1200),
			Price:       priceLabel(raw.PriceLevel),
			IsOpen:      openOrDefault(raw.OpeningHours),
			Address:     address,
			PlaceID:     placeID,
		},
		Phone:       raw.FormattedPhoneNumber,
		Website:     raw.Website,
		Description: description(raw),
		Images:      []string{},
	}

	if raw.Geometry != nil && raw.Geometry.Location != nil {
		details.Location = model.Coordinate{Lat: raw.Geometry.Location.Lat, Lng: raw.Geometry.Location.Lng}
	}
	if raw.OpeningHours != nil && len(raw.OpeningHours.WeekdayText) > 0 {
		details.Hours = strings.Join(raw.OpeningHours.WeekdayText, "\n")
	}
	for _, photo := range raw.Photos {
		details.Images = append(details.Images, t.places.PhotoURL(photo.PhotoReference, 1200))
	}

	amenityTags := raw.Types
	if len(amenityTags) > 6 {
		amenityTags = amenityTags[:6]
	}
	for _, tag := range amenityTags {
		details.Amenities = append(details.Amenities, strings.ReplaceAll(tag, "_", " "))
	}

	for _, review := range raw.Reviews {
		details.Reviews = append(details.Reviews, model.Review{
			ID:      review.Time,
			Author:  review.AuthorName,
			Avatar:  review.ProfilePhotoURL,
			Rating:  review.Rating,
			Date:    review.RelativeTimeDescription,
			Text:    review.Text,
			Helpful: 0,
		})
	}

	return details
}

// description prefers the provider's editorial summary and falls back to a
// short generated line.
func description(raw DetailsResult) string {
	if raw.EditorialSummary != nil && raw.EditorialSummary.Overview != "" {
		return raw.EditorialSummary.Overview
	}
	area := raw.Vicinity
	if area == "" {
		area = "the area"
	}
	return fmt.Sprintf("A popular %s in %s.", categoryLabel(raw.Types, "place"), area)
}

func (t *PlaceTransformer) imageURL(photos []Photo, maxWidth int) string {
	if len(photos) > 0 && photos[0].PhotoReference != "" {
		return t.places.PhotoURL(photos[0].PhotoReference, maxWidth)
	}
	return placeholderImageURL
}

// categoryLabel derives a display category from the first type tag.
func categoryLabel(types []string, fallback string) string {
	if len(types) > 0 && types[0] != "" {
		return strings.ReplaceAll(types[0], "_", " ")
	}
	if fallback != "" {
		return fallback
	}
	return "Place"
}

// priceLabel repeats the currency glyph priceLevel times; unknown tiers show
// two glyphs.
func priceLabel(priceLevel int) string {
	if priceLevel <= 0 {
		return strings.Repeat(currencyGlyph, 2)
	}
	return strings.Repeat(currencyGlyph, priceLevel)
}

func ratingOrDefault(rating float64) float64 {
	if rating == 0 {
		return 4.0
	}
	return rating
}

func openOrDefault(hours *OpeningHours) bool {
	if hours == nil || hours.OpenNow == nil {
		return true
	}
	return *hours.OpenNow
}
