package recommend

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/localmind/internal/model"
)

// DayPattern summarizes observed open/close times for one weekday.
type DayPattern struct {
	AvgOpen      string `json:"avg_open"`
	AvgClose     string `json:"avg_close"`
	EarliestOpen string `json:"earliest_open"`
	LatestClose  string `json:"latest_close"`
}

// PeakTimes are the static peak windows reported with every hours analysis.
type PeakTimes struct {
	WeekdayPeaks     []string `json:"weekday_peaks"`
	WeekendPeaks     []string `json:"weekend_peaks"`
	SeasonalPatterns []string `json:"seasonal_patterns"`
}

// HoursAnalysis is the observed-hours pattern report for a market scan.
type HoursAnalysis struct {
	Patterns        map[string]DayPattern `json:"patterns"`
	PeakTimes       PeakTimes             `json:"peak_times"`
	Recommendations []string              `json:"recommendations"`
	SampleSize      int                   `json:"sample_size"`
}

// timeToken matches one clock time inside an hours string, like "9", "9:30",
// or "5:00 PM".
var timeToken = regexp.MustCompile(`(\d{1,2}):?(\d{0,2})\s*(AM|PM)?`)

// AnalyzeHours derives per-day opening patterns from businesses that carry
// hours data. Days with no parseable observations are omitted from Patterns.
func AnalyzeHours(businesses []model.Business) HoursAnalysis {
	openTimes := make(map[string][]float64)
	closeTimes := make(map[string][]float64)
	sampleSize := 0

	for _, b := range businesses {
		if len(b.Hours) == 0 {
			continue
		}
		sampleSize++
		for day, hours := range b.Hours {
			open, close, ok := extractOpenClose(hours)
			if !ok {
				continue
			}
			openTimes[day] = append(openTimes[day], open)
			closeTimes[day] = append(closeTimes[day], close)
		}
	}

	patterns := make(map[string]DayPattern)
	for _, day := range model.Weekdays {
		opens, closes := openTimes[day], closeTimes[day]
		if len(opens) == 0 || len(closes) == 0 {
			continue
		}
		patterns[day] = DayPattern{
			AvgOpen:      decimalToClock(mean(opens)),
			AvgClose:     decimalToClock(mean(closes)),
			EarliestOpen: decimalToClock(minOf(opens)),
			LatestClose:  decimalToClock(maxOf(closes)),
		}
	}

	return HoursAnalysis{
		Patterns: patterns,
		PeakTimes: PeakTimes{
			WeekdayPeaks:     []string{"8:00-10:00 AM", "12:00-2:00 PM", "5:00-7:00 PM"},
			WeekendPeaks:     []string{"10:00 AM-12:00 PM", "2:00-5:00 PM", "7:00-9:00 PM"},
			SeasonalPatterns: []string{"Higher activity in Q4", "Summer outdoor business boost"},
		},
		Recommendations: []string{
			"Align opening hours with local business patterns",
			"Extend hours during identified peak periods",
			"Consider early morning hours for professional service areas",
			"Weekend hours should reflect leisure activity patterns",
		},
		SampleSize: sampleSize,
	}
}

// extractOpenClose parses an hours string like "9:00 AM - 5:00 PM" into
// decimal 24-hour open and close times. A missing AM/PM marker defaults to
// AM before noon on the open side and PM on the close side.
func extractOpenClose(hours string) (open, close float64, ok bool) {
	if hours == "" || strings.Contains(strings.ToLower(hours), "closed") {
		return 0, 0, false
	}

	matches := timeToken.FindAllStringSubmatch(strings.ToUpper(hours), -1)
	if len(matches) < 2 {
		return 0, 0, false
	}

	openHour, openMin := parseClock(matches[0])
	openPeriod := matches[0][3]
	if openPeriod == "" {
		openPeriod = "AM"
		if openHour >= 12 {
			openPeriod = "PM"
		}
	}

	closeHour, closeMin := parseClock(matches[1])
	closePeriod := matches[1][3]
	if closePeriod == "" {
		closePeriod = "PM"
	}

	return toDecimal24(openHour, openMin, openPeriod), toDecimal24(closeHour, closeMin, closePeriod), true
}

func parseClock(match []string) (hour, minute int) {
	hour, _ = strconv.Atoi(match[1])
	if match[2] != "" {
		minute, _ = strconv.Atoi(match[2])
	}
	return hour, minute
}

func toDecimal24(hour, minute int, period string) float64 {
	if period == "PM" && hour != 12 {
		hour += 12
	} else if period == "AM" && hour == 12 {
		hour = 0
	}
	return float64(hour) + float64(minute)/60
}

// decimalToClock renders a decimal 24-hour time as a 12-hour clock string.
func decimalToClock(decimal float64) string {
	hour := int(decimal)
	minute := int((decimal - float64(hour)) * 60)

	switch {
	case hour == 0:
		return fmt.Sprintf("12:%02d AM", minute)
	case hour < 12:
		return fmt.Sprintf("%d:%02d AM", hour, minute)
	case hour == 12:
		return fmt.Sprintf("12:%02d PM", minute)
	default:
		return fmt.Sprintf("%d:%02d PM", hour-12, minute)
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func minOf(values []float64) float64 {
	lowest := values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

func maxOf(values []float64) float64 {
	highest := values[0]
	for _, v := range values[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}
