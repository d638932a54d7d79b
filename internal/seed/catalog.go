package seed

import (
	"travelease/internal/domains/hotel/model"
)

// Hotels returns the seeded hotel catalog.
func Hotels() []model.Hotel {
	return []model.Hotel{
		{
			ID:          1,
			Name:        "Grand Luxury Hotel",
			City:        "New York",
			Country:     "USA",
			Price:       299,
			Rating:      4.8,
			Reviews:     1245,
			Image:       "/images/hotels/hotel1.jpg",
			Description: "Luxury hotel in the heart of Manhattan with breathtaking city views.",
			Amenities:   []string{"WiFi", "Pool", "Spa", "Gym", "Restaurant", "Parking"},
			Rooms: []model.Room{
				{Type: "Deluxe Room", Price: 299, Available: 5},
				{Type: "Executive Suite", Price: 499, Available: 2},
				{Type: "Presidential Suite", Price: 899, Available: 1},
			},
		},
		{
			ID:          2,
			Name:        "Beach Paradise Resort",
			City:        "Miami",
			Country:     "USA",
			Price:       189,
			Rating:      4.5,
			Reviews:     892,
			Image:       "/images/hotels/hotel2.jpg",
			Description: "Beachfront resort with private beach access and tropical gardens.",
			Amenities:   []string{"Beach Access", "Pool", "Spa", "Bar", "WiFi", "Breakfast"},
			Rooms: []model.Room{
				{Type: "Standard Room", Price: 189, Available: 10},
				{Type: "Ocean View", Price: 289, Available: 4},
			},
		},
		{
			ID:          3,
			Name:        "Mountain Retreat Lodge",
			City:        "Swiss Alps",
			Country:     "Switzerland",
			Price:       349,
			Rating:      4.9,
			Reviews:     567,
			Image:       "/images/hotel3.jpg",
			Description: "Cozy lodge with panoramic mountain views and ski-in/ski-out access.",
			Amenities:   []string{"Fireplace", "Ski Storage", "Sauna", "Restaurant", "WiFi"},
			Rooms: []model.Room{
				{Type: "Mountain View Room", Price: 349, Available: 3},
				{Type: "Chalet Suite", Price: 549, Available: 1},
			},
		},
	}
}

// Destinations returns the seeded destination list.
func Destinations() []model.Destination {
	return []model.Destination{
		{ID: 1, Name: "New York", Country: "USA", Image: "/images/ny.jpg"},
		{ID: 2, Name: "Paris", Country: "France", Image: "/images/paris.jpg"},
		{ID: 3, Name: "Tokyo", Country: "Japan", Image: "/images/tokyo.jpg"},
		{ID: 4, Name: "Dubai", Country: "UAE", Image: "/images/dubai.jpg"},
		{ID: 5, Name: "Sydney", Country: "Australia", Image: "/images/sydney.jpg"},
	}
}
