package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/sells-group/localmind/internal/model"
)

// Gap describes a canonical business type whose observed count falls short of
// the expected baseline for a balanced market.
type Gap struct {
	BusinessType     string  `json:"business_type"`
	CurrentCount     int     `json:"current_count"`
	ExpectedCount    int     `json:"expected_count"`
	GapSize          int     `json:"gap_size"`
	Severity         string  `json:"severity"`
	OpportunityScore float64 `json:"opportunity_score"`
}

// expectedBusinesses is the baseline composition of a balanced local market.
// Ordered so ties in opportunity score keep a stable output order.
var expectedBusinesses = []struct {
	businessType string
	expected     int
}{
	{"Coffee Shop", 3},
	{"Restaurant", 8},
	{"Convenience Store", 2},
	{"Fitness Center", 2},
	{"Beauty Salon", 2},
	{"Pharmacy", 1},
	{"Bank/ATM", 1},
	{"Gas Station", 1},
	{"Grocery Store", 2},
	{"Auto Services", 2},
}

// gapMatchKeywords maps a lower-cased expected type to the category keywords
// that count toward it. Types not listed match on their first word.
var gapMatchKeywords = map[string][]string{
	"coffee shop":       {"coffee", "cafe"},
	"restaurant":        {"restaurant", "dining", "food"},
	"convenience store": {"convenience", "market", "corner"},
	"fitness center":    {"fitness", "gym", "health"},
	"beauty salon":      {"salon", "beauty", "spa"},
	"pharmacy":          {"pharmacy", "drug", "cvs", "walgreens"},
	"grocery store":     {"grocery", "supermarket", "food store"},
}

// Gaps compares observed category counts against the expected baseline and
// returns underserved types sorted by opportunity score descending.
func Gaps(businesses []model.Business) []Gap {
	counts := CategoryCounts(businesses)
	total := len(businesses)

	gaps := []Gap{}
	for _, expected := range expectedBusinesses {
		current := 0
		for category, count := range counts {
			if categoryMatches(category, expected.businessType) {
				current += count
			}
		}
		if current >= expected.expected {
			continue
		}
		gaps = append(gaps, Gap{
			BusinessType:     expected.businessType,
			CurrentCount:     current,
			ExpectedCount:    expected.expected,
			GapSize:          expected.expected - current,
			Severity:         gapSeverity(current, expected.expected),
			OpportunityScore: gapOpportunityScore(current, expected.expected, total),
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].OpportunityScore > gaps[j].OpportunityScore
	})
	return gaps
}

// categoryMatches reports whether an observed category counts toward an
// expected business type.
func categoryMatches(category, expectedType string) bool {
	categoryLower := strings.ToLower(category)
	expectedLower := strings.ToLower(expectedType)

	keywords, ok := gapMatchKeywords[expectedLower]
	if !ok {
		keywords = strings.Fields(expectedLower)[:1]
	}
	for _, kw := range keywords {
		if strings.Contains(categoryLower, kw) {
			return true
		}
	}
	return false
}

// gapSeverity tiers the relative shortfall (expected-current)/expected.
func gapSeverity(current, expected int) string {
	ratio := float64(expected-current) / float64(expected)
	switch {
	case ratio >= 0.8:
		return "Critical"
	case ratio >= 0.5:
		return "High"
	case ratio >= 0.3:
		return "Medium"
	default:
		return "Low"
	}
}

// gapOpportunityScore scales the gap size by a market-size factor:
// min(10, 2·gap·min(2, total/50)), rounded to 1 decimal.
func gapOpportunityScore(current, expected, totalBusinesses int) float64 {
	gapSize := float64(expected - current)
	marketFactor := math.Min(2, float64(totalBusinesses)/50)
	return round1(math.Min(10, gapSize*2*marketFactor))
}
