// Package data holds the static demo places shown on the home page before a
// live search has run.
package data

import "nearme/internal/model"

// FeaturedPlaces is the curated demo set served by /api/featured.
var FeaturedPlaces = []model.PlaceDetails{
	{
		Place: model.Place{
			ID:          "1",
			Name:        "Café Madras",
			Category:    "South Indian Cafe",
			Rating:      4.8,
			ReviewCount: 1234,
			Distance:    "0.8 km",
			DistanceKm:  0.8,
			Image:       "https://images.unsplash.com/photo-1630409774334-e2d1c85bf6e7?w=800&h=600&fit=crop",
			Price:       "₹₹",
			IsOpen:      true,
			Address:     "15/218-1, Linking Road, Bandra West, Mumbai, Maharashtra 400050",
			Location:    model.Coordinate{Lat: 19.0596, Lng: 72.8295},
		},
		Phone:       "+91 98765 43210",
		Website:     "www.cafemadras.in",
		Hours:       "Mon-Sun: 7:00 AM - 11:00 PM",
		Description: "An authentic South Indian cafe serving traditional filter coffee, freshly made dosas, idlis, and vadas. Experience the taste of Chennai in the heart of Mumbai with our family recipes passed down through generations.",
		Images: []string{
			"https://images.unsplash.com/photo-1630409774334-e2d1c85bf6e7?w=1200&h=800&fit=crop",
			"https://images.unsplash.com/photo-1589301773859-bb024d3f2e03?w=1200&h=800&fit=crop",
		},
		Amenities: []string{"WiFi", "AC", "Outdoor Seating", "Wheelchair Accessible", "Parking", "UPI/Cards Accepted"},
	},
	{
		Place: model.Place{
			ID:          "2",
			Name:        "Punjabi Tadka",
			Category:    "North Indian Restaurant",
			Rating:      4.6,
			ReviewCount: 2567,
			Distance:    "1.5 km",
			DistanceKm:  1.5,
			Image:       "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=800&h=600&fit=crop",
			Price:       "₹₹₹",
			IsOpen:      true,
			Address:     "Plot No. 12, Sector 18, Vashi, Navi Mumbai, Maharashtra 400703",
			Location:    model.Coordinate{Lat: 19.0728, Lng: 72.9986},
		},
		Phone:       "+91 98765 12345",
		Website:     "www.punjabitadka.com",
		Hours:       "Mon-Sun: 11:00 AM - 11:00 PM",
		Description: "Authentic North Indian cuisine with rich flavors and traditional spices. Famous for our Butter Chicken and Dal Makhani.",
		Images: []string{
			"https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=1200&h=800&fit=crop",
		},
		Amenities: []string{"AC", "Family Seating", "Valet Parking", "Live Music", "UPI/Cards Accepted"},
	},
	{
		Place: model.Place{
			ID:          "3",
			Name:        "Serenity Spa & Wellness",
			Category:    "Spa",
			Rating:      4.9,
			ReviewCount: 876,
			Distance:    "2.1 km",
			DistanceKm:  2.1,
			Image:       "https://images.unsplash.com/photo-1540555700478-4be289fbecef?w=800&h=600&fit=crop",
			Price:       "₹₹₹₹",
			IsOpen:      true,
			Address:     "3rd Floor, Palladium Mall, Lower Parel, Mumbai, Maharashtra 400013",
			Location:    model.Coordinate{Lat: 18.9936, Lng: 72.8235},
		},
		Phone:       "+91 98765 67890",
		Website:     "www.serenityspa.in",
		Hours:       "Mon-Sun: 9:00 AM - 9:00 PM",
		Description: "A tranquil escape in the city offering ayurvedic treatments, aromatherapy massages and wellness packages.",
		Images: []string{
			"https://images.unsplash.com/photo-1540555700478-4be289fbecef?w=1200&h=800&fit=crop",
		},
		Amenities: []string{"AC", "Couples Rooms", "Steam Bath", "Parking", "UPI/Cards Accepted"},
	},
	{
		Place: model.Place{
			ID:          "4",
			Name:        "The Daily Grind",
			Category:    "Coffee Shop",
			Rating:      4.5,
			ReviewCount: 1892,
			Distance:    "0.5 km",
			DistanceKm:  0.5,
			Image:       "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800&h=600&fit=crop",
			Price:       "₹₹",
			IsOpen:      false,
			Address:     "Shop 4, Hill Road, Bandra West, Mumbai, Maharashtra 400050",
			Location:    model.Coordinate{Lat: 19.0544, Lng: 72.8266},
		},
		Phone:       "+91 98765 11223",
		Hours:       "Mon-Sat: 8:00 AM - 10:00 PM",
		Description: "Specialty coffee roasted in-house, all-day breakfast and quiet corners for getting work done.",
		Images: []string{
			"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=1200&h=800&fit=crop",
		},
		Amenities: []string{"WiFi", "Power Outlets", "Outdoor Seating", "Pet Friendly"},
	},
}
