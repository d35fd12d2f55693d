package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/localmind/internal/model"
)

func TestGapsEmptyMarket(t *testing.T) {
	gaps := Gaps(nil)

	// Every expected type is missing, but with zero businesses the market
	// factor min(2, 0/50) zeroes every opportunity score.
	require.Len(t, gaps, len(expectedBusinesses))
	for _, gap := range gaps {
		assert.Equal(t, 0, gap.CurrentCount)
		assert.Equal(t, gap.ExpectedCount, gap.GapSize)
		assert.Equal(t, "Critical", gap.Severity)
		assert.Equal(t, 0.0, gap.OpportunityScore)
	}
}

func TestGapsSaturatedTypeExcluded(t *testing.T) {
	// 50 restaurants saturate the Restaurant baseline of 8, so only the
	// other nine types surface as gaps.
	gaps := Gaps(repeat(50, "Restaurant", 4.0))

	require.Len(t, gaps, len(expectedBusinesses)-1)
	for _, gap := range gaps {
		assert.NotEqual(t, "Restaurant", gap.BusinessType)
	}

	// Market factor min(2, 50/50) = 1, so Coffee Shop scores
	// min(10, 3*2*1) = 6.0 and leads the descending sort.
	assert.Equal(t, "Coffee Shop", gaps[0].BusinessType)
	assert.Equal(t, 6.0, gaps[0].OpportunityScore)
}

func TestGapsCategoryMatching(t *testing.T) {
	businesses := []model.Business{
		{Name: "A", Category: "Cafe Luna"},         // counts toward Coffee Shop via "cafe"
		{Name: "B", Category: "CVS"},               // counts toward Pharmacy via "cvs"
		{Name: "C", Category: "Gym Plus"},          // counts toward Fitness Center via "gym"
		{Name: "D", Category: "Unrelated Service"}, // counts toward nothing
	}

	gaps := Gaps(businesses)

	byType := make(map[string]Gap, len(gaps))
	for _, gap := range gaps {
		byType[gap.BusinessType] = gap
	}

	// Pharmacy expects 1 and the CVS satisfies it.
	_, ok := byType["Pharmacy"]
	assert.False(t, ok)

	// Coffee Shop expects 3, sees 1: ratio 2/3 = 0.67 is High.
	coffee := byType["Coffee Shop"]
	assert.Equal(t, 1, coffee.CurrentCount)
	assert.Equal(t, 2, coffee.GapSize)
	assert.Equal(t, "High", coffee.Severity)

	// Fitness Center expects 2, sees 1: ratio 0.5 is High.
	fitness := byType["Fitness Center"]
	assert.Equal(t, 1, fitness.CurrentCount)
	assert.Equal(t, "High", fitness.Severity)
}

func TestGapSeverityBands(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		expected int
		severity string
	}{
		{"fully missing", 0, 8, "Critical"},  // ratio 1.0
		{"mostly missing", 1, 8, "Critical"}, // ratio 0.875
		{"half missing", 1, 2, "High"},       // ratio 0.5
		{"third missing", 5, 8, "Medium"},    // ratio 0.375
		{"nearly met", 7, 8, "Low"},          // ratio 0.125
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.severity, gapSeverity(tt.current, tt.expected))
		})
	}
}

func TestGapOpportunityScore(t *testing.T) {
	// gap 3 in a 50-business market: min(10, 3*2*1) = 6.0
	assert.Equal(t, 6.0, gapOpportunityScore(0, 3, 50))
	// gap 8 in a 100-business market caps at 10: 8*2*2 = 32
	assert.Equal(t, 10.0, gapOpportunityScore(0, 8, 100))
	// bigger markets never lower a gap's score
	assert.LessOrEqual(t, gapOpportunityScore(0, 3, 25), gapOpportunityScore(0, 3, 50))
}
