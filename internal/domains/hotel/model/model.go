package model

const (
	EntityName            = "hotels"
	DestinationEntityName = "destinations"
)

type Room struct {
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Available int     `json:"available"`
}

// Hotel is a catalog record. The catalog is seeded at startup and read
// only, so cached copies never need invalidation.
type Hotel struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Rooms       []Room   `json:"rooms"`
}

type Destination struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	Image   string `json:"image"`
}
