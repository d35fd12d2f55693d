package metrics

import (
	"math"

	"github.com/sells-group/localmind/internal/model"
)

// HealthIndicators are the three weighted inputs to the market health score.
type HealthIndicators struct {
	BusinessDiversity float64 `json:"business_diversity"`
	ServiceQuality    float64 `json:"service_quality"`
	MarketActivity    float64 `json:"market_activity"`
}

// HealthReport holds the overall market health score, its indicators, and
// the qualitative assessment.
type HealthReport struct {
	HealthScore float64          `json:"health_score"`
	Indicators  HealthIndicators `json:"indicators"`
	Assessment  string           `json:"assessment,omitempty"`
}

// Health scores market health from diversity, quality, and activity,
// weighted 0.3/0.4/0.3. The empty collection yields score 0.
func Health(businesses []model.Business) HealthReport {
	if len(businesses) == 0 {
		return HealthReport{}
	}

	indicators := HealthIndicators{
		BusinessDiversity: round1(math.Min(10, float64(len(CategoryCounts(businesses)))/2)),
		ServiceQuality:    round1(meanRating(businesses, 3.5) / 5 * 10),
		MarketActivity:    round1(math.Min(10, float64(len(businesses))/5)),
	}

	score := round1(indicators.BusinessDiversity*0.3 +
		indicators.ServiceQuality*0.4 +
		indicators.MarketActivity*0.3)

	return HealthReport{
		HealthScore: score,
		Indicators:  indicators,
		Assessment:  healthAssessment(score),
	}
}

func healthAssessment(score float64) string {
	switch {
	case score >= 8:
		return "Thriving market with strong fundamentals"
	case score >= 6:
		return "Healthy market with good potential"
	case score >= 4:
		return "Developing market with mixed indicators"
	default:
		return "Challenging market conditions - careful analysis required"
	}
}
