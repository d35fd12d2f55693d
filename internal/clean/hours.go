package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sells-group/localmind/internal/model"
)

// timeRange matches "9:00 AM - 5:00 PM"-style spans, with optional minutes
// and meridiem.
var timeRange = regexp.MustCompile(`(?i)(\d{1,2}(?::\d{2})?\s*(?:AM|PM)?)\s*-\s*(\d{1,2}(?::\d{2})?\s*(?:AM|PM)?)`)

// Hours parses business hours from either a weekday-keyed mapping
// (case-insensitive keys) or a free-text "Mon-Fri"-style string. Unparseable
// input yields an empty map; missing days are simply absent.
func Hours(raw any) map[string]string {
	switch v := raw.(type) {
	case map[string]string:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return hoursFromMap(m)
	case map[string]any:
		return hoursFromMap(v)
	case string:
		return hoursFromString(v)
	}
	return map[string]string{}
}

func hoursFromMap(raw map[string]any) map[string]string {
	out := make(map[string]string)
	for key, val := range raw {
		day, ok := matchWeekday(key)
		if !ok {
			continue
		}
		s := strings.TrimSpace(stringValue(val))
		if s != "" {
			out[day] = s
		}
	}
	return out
}

// hoursFromString handles the common "Mon-Fri: 9AM-5PM" shape: the first time
// range found is applied to all five weekdays, weekend left unset.
func hoursFromString(raw string) map[string]string {
	out := make(map[string]string)
	if !strings.Contains(strings.ToLower(raw), "mon-fri") {
		return out
	}
	m := timeRange.FindStringSubmatch(raw)
	if m == nil {
		return out
	}
	span := strings.TrimSpace(m[1]) + " - " + strings.TrimSpace(m[2])
	for _, day := range model.Weekdays[:5] {
		out[day] = span
	}
	return out
}

// matchWeekday resolves a map key to a capitalized weekday name.
func matchWeekday(key string) (string, bool) {
	for _, day := range model.Weekdays {
		if strings.EqualFold(key, day) {
			return day, true
		}
	}
	return "", false
}

func stringValue(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprint(s)
	}
}
