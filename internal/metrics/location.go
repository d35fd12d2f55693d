package metrics

import (
	"math"

	"github.com/sells-group/localmind/internal/model"
)

// LocationFactors are the three weighted inputs to the location score.
type LocationFactors struct {
	BusinessDensity   float64 `json:"business_density"`
	BusinessDiversity float64 `json:"business_diversity"`
	AreaQuality       float64 `json:"area_quality"`
}

// LocationReport holds the overall location score, its factors, and the
// qualitative recommendation.
type LocationReport struct {
	Score          float64         `json:"score"`
	Factors        LocationFactors `json:"factors"`
	Recommendation string          `json:"recommendation,omitempty"`
}

// Location scores a location from business density, category diversity, and
// area quality, weighted 0.4/0.3/0.3. The empty collection yields the neutral
// score 5.0.
func Location(businesses []model.Business) LocationReport {
	if len(businesses) == 0 {
		return LocationReport{Score: 5.0}
	}

	n := len(businesses)

	// Medium density is optimal: ramp up to 7 below 20 businesses, flat 10
	// from 20 to 49, decay toward a floor of 3 at 50 and above.
	var densityScore float64
	switch {
	case n < 20:
		densityScore = float64(n) / 20 * 7
	case n < 50:
		densityScore = 10
	default:
		densityScore = math.Max(3, 10-float64(n-50)/10)
	}

	diversityScore := math.Min(10, float64(len(CategoryCounts(businesses)))/3)
	qualityScore := meanRating(businesses, 3.5) / 5 * 10

	factors := LocationFactors{
		BusinessDensity:   round1(densityScore),
		BusinessDiversity: round1(diversityScore),
		AreaQuality:       round1(qualityScore),
	}

	overall := round1(factors.BusinessDensity*0.4 +
		factors.BusinessDiversity*0.3 +
		factors.AreaQuality*0.3)

	return LocationReport{
		Score:          overall,
		Factors:        factors,
		Recommendation: locationRecommendation(overall),
	}
}

func locationRecommendation(score float64) string {
	switch {
	case score >= 8:
		return "Excellent location with strong market potential"
	case score >= 6:
		return "Good location with moderate opportunities"
	case score >= 4:
		return "Average location - consider market positioning carefully"
	default:
		return "Challenging location - strong differentiation required"
	}
}
