package metrics

import (
	"math"

	"github.com/sells-group/localmind/internal/model"
)

// CategoryShare is one category's slice of the market.
type CategoryShare struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DensityReport holds market-density measurements for one search area.
type DensityReport struct {
	DensityScore         float64                  `json:"density_score"`
	BusinessesPerKm2     float64                  `json:"businesses_per_km2"`
	CategoryDistribution map[string]CategoryShare `json:"category_distribution"`
	SaturationLevel      string                   `json:"saturation_level"`
	TotalBusinesses      int                      `json:"total_businesses"`
}

// Density computes businesses per km² inside the search radius, a 0-10
// density score, the saturation tier, and the category distribution. The
// empty collection yields score 0 and saturation "Low".
func Density(businesses []model.Business, radiusMeters int) DensityReport {
	if len(businesses) == 0 {
		return DensityReport{
			CategoryDistribution: map[string]CategoryShare{},
			SaturationLevel:      "Low",
		}
	}

	areaKm2 := math.Pi * math.Pow(float64(radiusMeters)/1000, 2)
	perKm2 := float64(len(businesses)) / areaKm2

	total := len(businesses)
	distribution := make(map[string]CategoryShare)
	for category, count := range CategoryCounts(businesses) {
		distribution[category] = CategoryShare{
			Count:      count,
			Percentage: round1(float64(count) / float64(total) * 100),
		}
	}

	score := math.Min(10, perKm2/10)

	var saturation string
	switch {
	case score < 3:
		saturation = "Low"
	case score < 7:
		saturation = "Medium"
	default:
		saturation = "High"
	}

	return DensityReport{
		DensityScore:         round1(score),
		BusinessesPerKm2:     round1(perKm2),
		CategoryDistribution: distribution,
		SaturationLevel:      saturation,
		TotalBusinesses:      total,
	}
}
