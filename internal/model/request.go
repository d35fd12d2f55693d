package model

// AnalyzeRequest is the raw request body accepted by every analysis endpoint.
// Only Location and BusinessType are required; the HTTP layer rejects requests
// missing them before the pipeline runs.
type AnalyzeRequest struct {
	Location      string    `json:"location"`
	BusinessType  string    `json:"business_type"`
	Radius        *float64  `json:"radius,omitempty"`
	Coordinates   []float64 `json:"coordinates,omitempty"`
	CurrentHours  string    `json:"current_hours,omitempty"`
	FocusIndustry string    `json:"focus_industry,omitempty"`
}

// Coordinates is a validated latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AddressComponents holds the best-effort comma-split of a location string.
// This is heuristic substring splitting, not geocoding.
type AddressComponents struct {
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
}

// LocationInfo is the validated form of the caller's location input.
type LocationInfo struct {
	Original          string            `json:"original"`
	Cleaned           string            `json:"cleaned"`
	Coordinates       *Coordinates      `json:"coordinates,omitempty"`
	AddressComponents AddressComponents `json:"address_components"`
}

// BusinessTypeInfo is the validated form of the caller's business type input.
// Standardized is one of the fixed vocabulary (restaurant, retail, fitness,
// beauty, professional, healthcare, education, general) or, for unmatched
// input, the lower-cased original verbatim.
type BusinessTypeInfo struct {
	Original         string   `json:"original"`
	Standardized     string   `json:"standardized"`
	CategoryKeywords []string `json:"category_keywords"`
}

// ValidatedRequest holds normalized, bounded request parameters. Recreated per
// request and never mutated after creation.
type ValidatedRequest struct {
	Location     *LocationInfo     `json:"location,omitempty"`
	BusinessType *BusinessTypeInfo `json:"business_type,omitempty"`
	Radius       int               `json:"radius"`
	ProcessedAt  string            `json:"processed_at"`
}
