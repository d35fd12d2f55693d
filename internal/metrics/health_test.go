package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/localmind/internal/model"
)

func TestHealthEmpty(t *testing.T) {
	report := Health(nil)

	assert.Equal(t, 0.0, report.HealthScore)
	assert.Empty(t, report.Assessment)
}

func TestHealth(t *testing.T) {
	// 10 businesses across 4 categories, all rated 4.0:
	//   diversity min(10, 4/2)  = 2.0
	//   quality   4.0/5*10      = 8.0
	//   activity  min(10, 10/5) = 2.0
	//   overall   2.0*0.3 + 8.0*0.4 + 2.0*0.3 = 0.6 + 3.2 + 0.6 = 4.4
	var businesses []model.Business
	categories := []string{"Coffee Shop", "Restaurant", "Retail Store", "Fitness Center"}
	for i := 0; i < 10; i++ {
		businesses = append(businesses, model.Business{
			Name:     "Biz",
			Category: categories[i%len(categories)],
			Rating:   4.0,
		})
	}

	report := Health(businesses)

	assert.Equal(t, HealthIndicators{
		BusinessDiversity: 2.0,
		ServiceQuality:    8.0,
		MarketActivity:    2.0,
	}, report.Indicators)
	assert.Equal(t, 4.4, report.HealthScore)
	assert.Equal(t, "Developing market with mixed indicators", report.Assessment)
}

func TestHealthThrivingMarket(t *testing.T) {
	// 50 businesses across 20 categories rated 4.5:
	//   diversity min(10, 20/2) = 10, quality 9.0, activity min(10, 50/5) = 10
	//   overall 10*0.3 + 9*0.4 + 10*0.3 = 9.6
	var businesses []model.Business
	for i := 0; i < 50; i++ {
		businesses = append(businesses, model.Business{
			Name:     "Biz",
			Category: string(rune('A' + i%20)),
			Rating:   4.5,
		})
	}

	report := Health(businesses)

	assert.Equal(t, 9.6, report.HealthScore)
	assert.Equal(t, "Thriving market with strong fundamentals", report.Assessment)
}

func TestHealthScoreBounded(t *testing.T) {
	report := Health(repeat(500, "Retail Store", 5.0))

	assert.LessOrEqual(t, report.HealthScore, 10.0)
	assert.GreaterOrEqual(t, report.HealthScore, 0.0)
}
