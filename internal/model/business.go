// Package model defines the canonical entities shared across the analysis
// pipeline: cleaned business records and validated request parameters.
package model

// Business is the canonical cleaned record produced from one raw places-API
// result. Constructed once by the cleaner and never mutated afterwards; it
// lives only for the duration of a single request.
type Business struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Address    string            `json:"address"`
	Distance   int               `json:"distance"`
	Rating     float64           `json:"rating"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	PriceLevel int               `json:"price_level"`
	Phone      string            `json:"phone"`
	Website    string            `json:"website"`
	Hours      map[string]string `json:"hours"`
}

// Weekdays lists day names in schedule order. Hours maps are keyed by these
// capitalized names.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}
