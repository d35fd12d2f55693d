package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/localmind/internal/model"
)

func TestAnalyzeHoursEmpty(t *testing.T) {
	analysis := AnalyzeHours(nil)

	assert.Equal(t, 0, analysis.SampleSize)
	assert.Empty(t, analysis.Patterns)
	// Static peak windows and recommendations are always present.
	assert.Len(t, analysis.PeakTimes.WeekdayPeaks, 3)
	assert.Len(t, analysis.Recommendations, 4)
}

func TestAnalyzeHours(t *testing.T) {
	businesses := []model.Business{
		{
			Name: "Corner Market",
			Hours: map[string]string{
				"Monday":  "8:00 AM - 5:00 PM",
				"Tuesday": "Closed",
			},
		},
		{
			Name: "Daily Bread Bakery",
			Hours: map[string]string{
				"Monday": "10:00 AM - 7:00 PM",
			},
		},
		{Name: "No Hours Listed"},
	}

	analysis := AnalyzeHours(businesses)

	// Only the two businesses carrying hours count toward the sample.
	assert.Equal(t, 2, analysis.SampleSize)

	// Monday opens average (8 + 10) / 2 = 9, closes (17 + 19) / 2 = 18.
	monday, ok := analysis.Patterns["Monday"]
	require.True(t, ok)
	assert.Equal(t, DayPattern{
		AvgOpen:      "9:00 AM",
		AvgClose:     "6:00 PM",
		EarliestOpen: "8:00 AM",
		LatestClose:  "7:00 PM",
	}, monday)

	// The closed day produced no observations.
	_, ok = analysis.Patterns["Tuesday"]
	assert.False(t, ok)
}

func TestExtractOpenClose(t *testing.T) {
	tests := []struct {
		name  string
		hours string
		open  float64
		close float64
		ok    bool
	}{
		{"standard", "9:00 AM - 5:00 PM", 9, 17, true},
		{"half hours", "9:30 AM - 5:30 PM", 9.5, 17.5, true},
		{"late close", "6:00 AM - 10:00 PM", 6, 22, true},
		{"no period markers", "9 - 5", 9, 17, true},
		{"noon open", "12:00 PM - 8:00 PM", 12, 20, true},
		{"midnight open", "12:00 AM - 6:00 AM", 0, 6, true},
		{"closed", "Closed", 0, 0, false},
		{"empty", "", 0, 0, false},
		{"single time", "9:00 AM", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, close, ok := extractOpenClose(tt.hours)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.open, open)
				assert.Equal(t, tt.close, close)
			}
		})
	}
}

func TestDecimalToClock(t *testing.T) {
	tests := []struct {
		decimal float64
		want    string
	}{
		{0, "12:00 AM"},
		{6.5, "6:30 AM"},
		{12, "12:00 PM"},
		{13.25, "1:15 PM"},
		{23.5, "11:30 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, decimalToClock(tt.decimal))
	}
}
