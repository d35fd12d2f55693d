// Package recommend turns metrics outputs into human-facing narrative:
// weekly hour schedules, ranked opportunity lists, aggregated market
// insights, and the comprehensive report. The domain-knowledge tables it
// draws on (hour patterns per business type, peak-hour windows, opportunity
// categories with thresholds and multipliers) are embedded at build time and
// loaded once, so all lookups are read-only and safe for concurrent use.
package recommend

import (
	_ "embed"
	"math"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

type hourSpan struct {
	Open  int `yaml:"open"`
	Close int `yaml:"close"`
}

type hourPattern struct {
	Weekday hourSpan `yaml:"weekday"`
	Weekend hourSpan `yaml:"weekend"`
}

type opportunitySpec struct {
	Category    string  `yaml:"category"`
	Threshold   int     `yaml:"threshold"`
	Icon        string  `yaml:"icon"`
	Multiplier  float64 `yaml:"multiplier"`
	Description string  `yaml:"description"`
}

type tableSet struct {
	HourPatterns  map[string]hourPattern       `yaml:"hour_patterns"`
	PeakHours     map[string]map[string]string `yaml:"peak_hours"`
	Opportunities []opportunitySpec            `yaml:"opportunities"`
}

var tables tableSet

func init() {
	if err := yaml.Unmarshal(tablesYAML, &tables); err != nil {
		panic(eris.Wrap(err, "recommend: parse embedded tables"))
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
