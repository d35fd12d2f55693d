package clean

import (
	"strconv"

	"github.com/sells-group/localmind/internal/model"
)

// unknownName is the sentinel for records without a usable display name.
// Records that clean down to this (or to nothing) are dropped entirely.
const unknownName = "Unknown Business"

// Records normalizes a batch of raw place records into canonical Business
// entities, preserving input order. Elements missing a usable name are
// omitted; every other malformed field degrades to its documented default.
func Records(raw []map[string]any) []model.Business {
	cleaned := make([]model.Business, 0, len(raw))
	for _, item := range raw {
		if item == nil {
			continue
		}
		b := Record(item)
		if b.Name == "" || b.Name == unknownName {
			continue
		}
		cleaned = append(cleaned, b)
	}
	return cleaned
}

// Record normalizes a single raw place record. Callers that need the
// minimum-name check applied should use Records.
func Record(item map[string]any) model.Business {
	return model.Business{
		ID:         stringValue(item["id"]),
		Name:       Text(textField(item["name"])),
		Category:   Category(textField(item["category"])),
		Address:    Address(textField(item["address"])),
		Distance:   distance(item["distance"]),
		Rating:     rating(item["rating"]),
		Latitude:   coordinate(item["latitude"]),
		Longitude:  coordinate(item["longitude"]),
		PriceLevel: intValue(item["price_level"]),
		Phone:      Phone(textField(item["phone"])),
		Website:    URL(textField(item["website"])),
		Hours:      Hours(item["hours"]),
	}
}

// textField accepts only string values; any other type is treated as absent.
func textField(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// distance coerces to integer meters, clamped to >= 0; invalid input is 0.
func distance(v any) int {
	f, ok := floatValue(v)
	if !ok || f < 0 {
		return 0
	}
	return int(f)
}

// rating clamps to [0, 5]; invalid input is 0.
func rating(v any) float64 {
	f, ok := floatValue(v)
	if !ok {
		return 0
	}
	if f < 0 {
		return 0
	}
	if f > 5 {
		return 5
	}
	return f
}

// coordinate accepts values in [-180, 180]; anything else is 0. The same
// bound applies to latitude and longitude on purpose — downstream behavior
// depends on it.
func coordinate(v any) float64 {
	f, ok := floatValue(v)
	if !ok || f < -180 || f > 180 {
		return 0
	}
	return f
}

func intValue(v any) int {
	f, ok := floatValue(v)
	if !ok {
		return 0
	}
	return int(f)
}

// floatValue is the shared fallible numeric conversion: numbers and numeric
// strings pass, everything else reports absent.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
