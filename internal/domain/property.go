package domain

import "time"

type Property struct {
	ID            string
	Title         string
	Description   string
	PropertyType  string // apartment, house, villa, ...
	City          string
	State         string
	Address       string
	PricePerNight float64
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	Amenities     []string
	Images        []string
	Available     bool
	CreatedAt     time.Time
}

// SearchCriteria holds the optional listing filters. A nil field imposes no
// constraint; set fields combine with AND. Availability is always required
// and is not part of the criteria.
type SearchCriteria struct {
	City         *string  // case-insensitive substring
	MinPrice     *float64 // PricePerNight >= MinPrice
	MaxPrice     *float64 // PricePerNight <= MaxPrice
	MinGuests    *int     // MaxGuests >= MinGuests
	PropertyType *string  // case-insensitive substring
	Limit        int
	Offset       int
}

// MaxSearchResults is the hard ceiling on search output; offsets page
// beneath it but a caller can never see past the first 100 matches.
const MaxSearchResults = 100
