package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/localmind/internal/model"
)

// repeat builds n businesses sharing a category and rating, for tests that
// only care about counts and averages.
func repeat(n int, category string, rating float64) []model.Business {
	businesses := make([]model.Business, n)
	for i := range businesses {
		businesses[i] = model.Business{Name: "Biz", Category: category, Rating: rating}
	}
	return businesses
}

func TestCategoryCounts(t *testing.T) {
	businesses := []model.Business{
		{Name: "A", Category: "Coffee Shop"},
		{Name: "B", Category: "Coffee Shop"},
		{Name: "C", Category: "Restaurant"},
		{Name: "D"},
	}

	counts := CategoryCounts(businesses)

	assert.Equal(t, map[string]int{
		"Coffee Shop": 2,
		"Restaurant":  1,
		"Other":       1,
	}, counts)
}

func TestMeanRating(t *testing.T) {
	businesses := []model.Business{
		{Name: "A", Rating: 4.0},
		{Name: "B", Rating: 3.0},
		{Name: "C", Rating: 0}, // unrated, excluded from the mean
	}

	// (4.0 + 3.0) / 2 = 3.5
	assert.InDelta(t, 3.5, meanRating(businesses, 0), 0.0001)

	// Nothing rated falls back to the caller's default.
	assert.Equal(t, 3.5, meanRating([]model.Business{{Name: "A"}}, 3.5))
	assert.Equal(t, 0.0, meanRating(nil, 0))
}
