// Package metrics derives market measurements from cleaned business
// collections through fixed weighted formulas. Every function here is pure
// and total: no I/O, no input mutation, and documented zero/low defaults for
// the empty collection.
package metrics

import (
	"math"

	"github.com/sells-group/localmind/internal/model"
)

// CategoryCounts tallies businesses per standardized category label.
func CategoryCounts(businesses []model.Business) map[string]int {
	counts := make(map[string]int)
	for _, b := range businesses {
		category := b.Category
		if category == "" {
			category = "Other"
		}
		counts[category]++
	}
	return counts
}

// meanRating averages the ratings strictly greater than zero, returning
// fallback when nothing is rated.
func meanRating(businesses []model.Business, fallback float64) float64 {
	var sum float64
	var n int
	for _, b := range businesses {
		if b.Rating > 0 {
			sum += b.Rating
			n++
		}
	}
	if n == 0 {
		return fallback
	}
	return sum / float64(n)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
