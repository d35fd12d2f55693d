package recommend

import (
	"strings"

	"github.com/sells-group/localmind/internal/metrics"
	"github.com/sells-group/localmind/internal/model"
)

// ExecutiveSummary is the headline section of the comprehensive report.
type ExecutiveSummary struct {
	MarketAttractiveness  string `json:"market_attractiveness"`
	CompetitionIntensity  string `json:"competition_intensity"`
	PrimaryOpportunity    string `json:"primary_opportunity"`
	OverallRecommendation string `json:"overall_recommendation"`
}

// MarketAnalysis is the market section of the comprehensive report.
type MarketAnalysis struct {
	TotalBusinesses  int                  `json:"total_businesses"`
	MarketHealth     metrics.HealthReport `json:"market_health"`
	GrowthIndicators []string             `json:"growth_indicators"`
	MarketGaps       []metrics.Gap        `json:"market_gaps"`
}

// CompetitiveLandscape is the competition section of the comprehensive report.
type CompetitiveLandscape struct {
	DirectCompetitors     int              `json:"direct_competitors"`
	MarketLeaders         []metrics.Leader `json:"market_leaders"`
	CompetitiveAdvantages []string         `json:"competitive_advantages"`
	BarriersToEntry       []string         `json:"barriers_to_entry"`
}

// Report is the comprehensive business intelligence report.
type Report struct {
	ExecutiveSummary     ExecutiveSummary     `json:"executive_summary"`
	MarketAnalysis       MarketAnalysis       `json:"market_analysis"`
	CompetitiveLandscape CompetitiveLandscape `json:"competitive_landscape"`
}

// ReportInput carries everything BuildReport assembles from.
type ReportInput struct {
	Competitors   []model.Business
	AllBusinesses []model.Business
	MarketScore   float64
	Opportunities []Opportunity
	MarketGaps    []metrics.Gap
	MarketHealth  metrics.HealthReport
	MarketLeaders []metrics.Leader
}

// BuildReport assembles the comprehensive report from already-computed
// analysis pieces.
func BuildReport(in ReportInput) Report {
	competitorCount := len(in.Competitors)

	primaryOpportunity := "None identified"
	if len(in.Opportunities) > 0 {
		primaryOpportunity = in.Opportunities[0].Category
	}

	leaders := in.MarketLeaders
	if leaders == nil {
		leaders = []metrics.Leader{}
	}
	gaps := in.MarketGaps
	if gaps == nil {
		gaps = []metrics.Gap{}
	}

	return Report{
		ExecutiveSummary: ExecutiveSummary{
			MarketAttractiveness:  scoreToRating(in.MarketScore),
			CompetitionIntensity:  competitionIntensity(competitorCount),
			PrimaryOpportunity:    primaryOpportunity,
			OverallRecommendation: overallRecommendation(in.MarketScore, competitorCount),
		},
		MarketAnalysis: MarketAnalysis{
			TotalBusinesses:  len(in.AllBusinesses),
			MarketHealth:     in.MarketHealth,
			GrowthIndicators: growthIndicators(in.MarketScore, in.AllBusinesses),
			MarketGaps:       gaps,
		},
		CompetitiveLandscape: CompetitiveLandscape{
			DirectCompetitors:     competitorCount,
			MarketLeaders:         leaders,
			CompetitiveAdvantages: competitiveAdvantages(in.Competitors, in.MarketGaps),
			BarriersToEntry:       barriersToEntry(in.Competitors, in.MarketScore),
		},
	}
}

func scoreToRating(score float64) string {
	switch {
	case score >= 8:
		return "Excellent"
	case score >= 6:
		return "Good"
	case score >= 4:
		return "Fair"
	default:
		return "Poor"
	}
}

func competitionIntensity(count int) string {
	switch {
	case count <= 3:
		return "Low"
	case count <= 8:
		return "Moderate"
	case count <= 15:
		return "High"
	default:
		return "Very High"
	}
}

func overallRecommendation(marketScore float64, competitorCount int) string {
	switch {
	case marketScore >= 6 && competitorCount <= 8:
		return "Recommended - Favorable market conditions"
	case marketScore >= 4 && competitorCount <= 12:
		return "Proceed with caution - Moderate market conditions"
	default:
		return "Not recommended - Challenging market conditions"
	}
}

// modernKeywords mark business types whose presence suggests an evolving
// market.
var modernKeywords = []string{"tech", "fitness", "organic", "specialty"}

func growthIndicators(marketScore float64, businesses []model.Business) []string {
	indicators := []string{}

	if marketScore > 6 {
		indicators = append(indicators, "High business activity indicates growing market")
	}

	modern := 0
	for _, b := range businesses {
		categoryLower := strings.ToLower(b.Category)
		for _, kw := range modernKeywords {
			if strings.Contains(categoryLower, kw) {
				modern++
				break
			}
		}
	}
	if float64(modern) > float64(len(businesses))*0.2 {
		indicators = append(indicators, "Presence of modern business types suggests market evolution")
	}

	return indicators
}

func competitiveAdvantages(competitors []model.Business, gaps []metrics.Gap) []string {
	advantages := []string{}

	for _, c := range competitors {
		if c.Rating < 3.5 {
			advantages = append(advantages, "Opportunity to outperform underperforming competitors")
			break
		}
	}

	for _, g := range gaps {
		if g.OpportunityScore > 7 {
			advantages = append(advantages, "Clear market gaps present first-mover opportunities")
			break
		}
	}

	return advantages
}

func barriersToEntry(competitors []model.Business, marketScore float64) []string {
	barriers := []string{}

	strong := 0
	for _, c := range competitors {
		if c.Rating > 4.2 {
			strong++
		}
	}
	if strong > 5 {
		barriers = append(barriers, "Multiple established high-quality competitors")
	}

	if marketScore > 8 {
		barriers = append(barriers, "High market saturation may limit customer acquisition")
	}

	return barriers
}
