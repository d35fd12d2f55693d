package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Opportunity is one underserved business category in the scanned market.
type Opportunity struct {
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	MarketGap   int     `json:"market_gap"`
}

// Opportunities scans the market's category counts against the opportunity
// table and returns the top 6 qualifying categories by score descending. A
// category qualifies when its observed count is at or below its threshold.
func Opportunities(categories map[string]int, totalBusinesses int) []Opportunity {
	opportunities := []Opportunity{}
	for _, spec := range tables.Opportunities {
		count := countMatching(categories, spec.Category)
		if count > spec.Threshold {
			continue
		}
		opportunities = append(opportunities, Opportunity{
			Category:    spec.Category,
			Score:       opportunityScore(count, spec.Threshold, totalBusinesses, spec.Multiplier),
			Description: opportunityDescription(spec, count),
			Icon:        spec.Icon,
			MarketGap:   spec.Threshold - count,
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Score > opportunities[j].Score
	})
	if len(opportunities) > 6 {
		opportunities = opportunities[:6]
	}
	return opportunities
}

// FilterByIndustry keeps opportunities whose category mentions the focus
// industry. An empty focus keeps everything.
func FilterByIndustry(opportunities []Opportunity, focus string) []Opportunity {
	if focus == "" {
		return opportunities
	}
	focusLower := strings.ToLower(focus)
	filtered := []Opportunity{}
	for _, opp := range opportunities {
		if strings.Contains(strings.ToLower(opp.Category), focusLower) {
			filtered = append(filtered, opp)
		}
	}
	return filtered
}

// countMatching sums category counts where any whitespace token of the
// opportunity name appears as a substring of the category label.
func countMatching(categories map[string]int, opportunityName string) int {
	tokens := strings.Fields(strings.ToLower(opportunityName))
	total := 0
	for category, count := range categories {
		categoryLower := strings.ToLower(category)
		for _, token := range tokens {
			if strings.Contains(categoryLower, token) {
				total += count
				break
			}
		}
	}
	return total
}

// opportunityScore combines the gap below threshold with a market-size bonus,
// scaled by the category multiplier:
// min(10, (max(0, threshold-count)*2 + min(5, total/20)) * multiplier).
func opportunityScore(count, threshold, totalBusinesses int, multiplier float64) float64 {
	gapScore := math.Max(0, float64(threshold-count)*2)
	marketSizeScore := math.Min(5, float64(totalBusinesses)/20)
	return round1(math.Min(10, (gapScore+marketSizeScore)*multiplier))
}

func opportunityDescription(spec opportunitySpec, count int) string {
	if spec.Description == "" {
		return fmt.Sprintf("Market analysis shows potential for %s with %d existing competitors.",
			strings.ToLower(spec.Category), count)
	}
	return fmt.Sprintf(spec.Description, count)
}
