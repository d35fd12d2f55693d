package metrics

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/sells-group/localmind/internal/model"
)

// PriceAnalysis summarizes competitor price levels 1-4.
type PriceAnalysis struct {
	Average        float64            `json:"average"`
	Distribution   map[string]float64 `json:"distribution"`
	Recommendation string             `json:"recommendation"`
}

// Leader is a top-performing competitor with its combined score.
type Leader struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Distance int     `json:"distance"`
	Score    float64 `json:"score"`
}

// CompetitionReport holds the strength and positioning analysis of the
// competitor set relevant to a target business type.
type CompetitionReport struct {
	CompetitionStrength string           `json:"competition_strength"`
	AverageRating       float64          `json:"average_rating"`
	PriceAnalysis       PriceAnalysis    `json:"price_analysis"`
	MarketLeaders       []Leader         `json:"market_leaders"`
	WeakCompetitors     []model.Business `json:"weak_competitors"`
	CompetitorCount     int              `json:"competitor_count"`
}

// Competition analyzes competitor strength. typeKeywords narrows the
// competitor list to businesses whose category or name mentions one of the
// target type's keywords; an empty keyword list (unrecognized type) skips
// filtering and uses the full list.
func Competition(competitors []model.Business, typeKeywords []string) CompetitionReport {
	if len(competitors) == 0 {
		return CompetitionReport{
			CompetitionStrength: "Low",
			MarketLeaders:       []Leader{},
			WeakCompetitors:     []model.Business{},
		}
	}

	relevant := filterRelevant(competitors, typeKeywords)

	avgRating := meanRating(relevant, 0)

	var priceLevels []int
	for _, c := range relevant {
		if c.PriceLevel > 0 {
			priceLevels = append(priceLevels, c.PriceLevel)
		}
	}

	return CompetitionReport{
		CompetitionStrength: strengthTier(len(relevant), avgRating),
		AverageRating:       round1(avgRating),
		PriceAnalysis:       analyzePrices(priceLevels),
		MarketLeaders:       marketLeaders(relevant),
		WeakCompetitors:     weakCompetitors(relevant),
		CompetitorCount:     len(relevant),
	}
}

// filterRelevant keeps competitors whose category or name contains any of the
// keywords. Empty keywords mean no filtering.
func filterRelevant(competitors []model.Business, keywords []string) []model.Business {
	if len(keywords) == 0 {
		return competitors
	}
	var relevant []model.Business
	for _, c := range competitors {
		category := strings.ToLower(c.Category)
		name := strings.ToLower(c.Name)
		for _, kw := range keywords {
			if strings.Contains(category, kw) || strings.Contains(name, kw) {
				relevant = append(relevant, c)
				break
			}
		}
	}
	return relevant
}

// strengthTier combines a count factor and a rating factor into a tier:
// 0.6·min(1, n/10) + 0.4·(avg/5), banded at 0.3 and 0.7.
func strengthTier(count int, avgRating float64) string {
	countFactor := math.Min(1, float64(count)/10)
	ratingFactor := avgRating / 5
	combined := countFactor*0.6 + ratingFactor*0.4
	switch {
	case combined < 0.3:
		return "Low"
	case combined < 0.7:
		return "Medium"
	default:
		return "High"
	}
}

// analyzePrices computes the price-level distribution and a pricing posture
// recommendation.
func analyzePrices(levels []int) PriceAnalysis {
	if len(levels) == 0 {
		return PriceAnalysis{
			Distribution:   map[string]float64{},
			Recommendation: "Medium pricing",
		}
	}

	counts := make(map[int]int)
	var sum int
	for _, lvl := range levels {
		counts[lvl]++
		sum += lvl
	}
	total := float64(len(levels))

	distribution := map[string]float64{
		"budget":         round1(float64(counts[1]) / total * 100),
		"moderate":       round1(float64(counts[2]) / total * 100),
		"expensive":      round1(float64(counts[3]) / total * 100),
		"very_expensive": round1(float64(counts[4]) / total * 100),
	}

	avg := float64(sum) / total
	var recommendation string
	switch {
	case avg < 2:
		recommendation = "Consider moderate pricing for differentiation"
	case avg > 3:
		recommendation = "Budget-friendly pricing could capture underserved market"
	default:
		recommendation = "Competitive pricing environment - focus on value"
	}

	return PriceAnalysis{
		Average:        round1(avg),
		Distribution:   distribution,
		Recommendation: recommendation,
	}
}

// marketLeaders scores every competitor by 0.6·rating + 0.4·(1/max(1,
// distance/100)) and returns the top 3.
func marketLeaders(competitors []model.Business) []Leader {
	if len(competitors) == 0 {
		return []Leader{}
	}
	scored := make([]Leader, 0, len(competitors))
	for _, c := range competitors {
		proximity := 1 / math.Max(1, float64(c.Distance)/100)
		scored = append(scored, Leader{
			Name:     c.Name,
			Rating:   c.Rating,
			Distance: c.Distance,
			Score:    round2(c.Rating*0.6 + proximity*0.4),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}

// weakCompetitors returns up to 3 competitors rated below 3.5.
func weakCompetitors(competitors []model.Business) []model.Business {
	weak := []model.Business{}
	for _, c := range competitors {
		if c.Rating < 3.5 {
			weak = append(weak, c)
			if len(weak) == 3 {
				break
			}
		}
	}
	return weak
}

// CompetitorOverview is the coarse density/competition summary shown at the
// top of the competitor analysis.
type CompetitorOverview struct {
	MarketDensity    string   `json:"market_density"`
	CompetitionLevel string   `json:"competition_level"`
	AverageRating    float64  `json:"average_rating,omitempty"`
	TotalCompetitors int      `json:"total_competitors,omitempty"`
	Recommendations  []string `json:"recommendations"`
}

// Overview tiers the raw competitor count: ≤3 Low, ≤8 Medium, else High, with
// tier-specific recommendation strings.
func Overview(competitors []model.Business) CompetitorOverview {
	if len(competitors) == 0 {
		return CompetitorOverview{
			MarketDensity:    "Low",
			CompetitionLevel: "Low",
			Recommendations:  []string{"Great location with minimal competition!"},
		}
	}

	count := len(competitors)
	avgRating := meanRating(competitors, 0)

	var tier string
	switch {
	case count <= 3:
		tier = "Low"
	case count <= 8:
		tier = "Medium"
	default:
		tier = "High"
	}

	return CompetitorOverview{
		MarketDensity:    tier,
		CompetitionLevel: tier,
		AverageRating:    round1(avgRating),
		TotalCompetitors: count,
		Recommendations:  overviewRecommendations(tier, avgRating),
	}
}

func overviewRecommendations(tier string, avgRating float64) []string {
	switch tier {
	case "Low":
		return []string{
			"Excellent location with low competition - great opportunity!",
			"Focus on building strong local brand presence",
			"Consider premium pricing strategy due to limited competition",
		}
	case "Medium":
		return []string{
			"Balanced competition level - focus on differentiation",
			fmt.Sprintf("Aim to exceed average rating of %.1f stars", avgRating),
			"Monitor competitor pricing and service offerings closely",
		}
	default:
		return []string{
			"High competition area - strong differentiation required",
			"Focus on unique value proposition and superior service",
			"Consider niche specialization to stand out",
		}
	}
}
