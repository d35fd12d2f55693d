package clean

import "strings"

// categoryRules maps keywords to standardized category labels. Order matters:
// the first matching keyword wins, and some keywords are substrings of others,
// so this stays an ordered slice rather than a map.
var categoryRules = []struct {
	keyword string
	label   string
}{
	{"coffee", "Coffee Shop"},
	{"cafe", "Coffee Shop"},
	{"restaurant", "Restaurant"},
	{"fast food", "Fast Food"},
	{"pizza", "Pizza Restaurant"},
	{"gym", "Fitness Center"},
	{"fitness", "Fitness Center"},
	{"salon", "Beauty Salon"},
	{"spa", "Beauty Salon"},
	{"store", "Retail Store"},
	{"shop", "Retail Store"},
	{"clinic", "Healthcare"},
	{"doctor", "Healthcare"},
}

// Category maps a raw category string to a standardized label. Unmatched
// input is title-cased as given; empty input becomes "Other".
func Category(raw string) string {
	if raw == "" {
		return "Other"
	}
	lower := strings.ToLower(raw)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.label
		}
	}
	return titleCaser.String(raw)
}
