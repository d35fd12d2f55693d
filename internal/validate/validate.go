// Package validate normalizes caller-supplied request parameters into
// canonical, bounded values. Missing optional keys never produce errors here;
// required-parameter enforcement belongs to the HTTP layer.
package validate

import (
	"strings"
	"time"

	"github.com/sells-group/localmind/internal/clean"
	"github.com/sells-group/localmind/internal/model"
)

const (
	// DefaultRadius is used when the caller supplies no radius.
	DefaultRadius = 1000
	minRadius     = 100
	maxRadius     = 10000
)

// businessTypeRules maps keywords to the fixed business-type vocabulary.
// Ordered: first match wins.
var businessTypeRules = []struct {
	keyword string
	label   string
}{
	{"food", "restaurant"},
	{"dining", "restaurant"},
	{"cafe", "restaurant"},
	{"coffee", "restaurant"},
	{"shop", "retail"},
	{"store", "retail"},
	{"boutique", "retail"},
	{"gym", "fitness"},
	{"health", "fitness"},
	{"wellness", "fitness"},
	{"salon", "beauty"},
	{"spa", "beauty"},
	{"barber", "beauty"},
	{"office", "professional"},
	{"service", "professional"},
	{"clinic", "healthcare"},
	{"medical", "healthcare"},
	{"school", "education"},
	{"training", "education"},
}

// categoryKeywords associates each standardized business type with the
// keywords used to recognize businesses of that type in cleaned records.
var categoryKeywords = map[string][]string{
	"restaurant":   {"restaurant", "cafe", "bar", "food", "dining", "pizza", "burger", "coffee"},
	"retail":       {"store", "shop", "boutique", "market", "mall", "clothing", "electronics"},
	"fitness":      {"gym", "fitness", "yoga", "studio", "wellness", "health club", "crossfit"},
	"beauty":       {"salon", "spa", "barber", "nail", "beauty", "cosmetics", "massage"},
	"professional": {"office", "law", "accounting", "consulting", "real estate", "insurance"},
	"healthcare":   {"clinic", "doctor", "dental", "medical", "pharmacy", "hospital"},
	"education":    {"school", "college", "university", "training", "education", "tutoring"},
}

// now is swapped in tests to freeze ProcessedAt.
var now = time.Now

// Request normalizes a raw analysis request. It never fails: absent fields
// stay nil and out-of-range values are clamped.
func Request(req model.AnalyzeRequest) *model.ValidatedRequest {
	vr := &model.ValidatedRequest{
		Radius:      DefaultRadius,
		ProcessedAt: now().UTC().Format(time.RFC3339),
	}

	if req.Location != "" {
		vr.Location = &model.LocationInfo{
			Original:          req.Location,
			Cleaned:           clean.Text(req.Location),
			Coordinates:       extractCoordinates(req.Coordinates),
			AddressComponents: parseAddress(req.Location),
		}
	}

	if req.BusinessType != "" {
		standardized := BusinessType(req.BusinessType)
		vr.BusinessType = &model.BusinessTypeInfo{
			Original:         req.BusinessType,
			Standardized:     standardized,
			CategoryKeywords: CategoryKeywords(standardized),
		}
	}

	if req.Radius != nil {
		vr.Radius = clampRadius(int(*req.Radius))
	}

	return vr
}

// BusinessType standardizes a business-type string to the fixed vocabulary.
// Unmatched input falls back to the lower-cased original verbatim, unlike
// category standardization which uses "Other". Empty input maps to "general".
func BusinessType(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return "general"
	}
	for _, rule := range businessTypeRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.label
		}
	}
	return lower
}

// CategoryKeywords returns the recognition keywords for a standardized
// business type, or nil for types outside the fixed vocabulary.
func CategoryKeywords(businessType string) []string {
	return categoryKeywords[businessType]
}

// extractCoordinates accepts only a 2-element pair with latitude in [-90, 90]
// and longitude in [-180, 180]; everything else yields no coordinates.
func extractCoordinates(coords []float64) *model.Coordinates {
	if len(coords) != 2 {
		return nil
	}
	lat, lng := coords[0], coords[1]
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil
	}
	return &model.Coordinates{Latitude: lat, Longitude: lng}
}

// parseAddress splits a comma-separated location into components: first
// segment street, second-to-last city, last state. Best-effort only.
func parseAddress(location string) model.AddressComponents {
	var components model.AddressComponents
	if location == "" {
		return components
	}
	parts := strings.Split(location, ",")
	components.Street = strings.TrimSpace(parts[0])
	if len(parts) >= 2 {
		components.City = strings.TrimSpace(parts[len(parts)-2])
	}
	if len(parts) >= 3 {
		components.State = strings.TrimSpace(parts[len(parts)-1])
	}
	return components
}

func clampRadius(r int) int {
	if r < minRadius {
		return minRadius
	}
	if r > maxRadius {
		return maxRadius
	}
	return r
}
