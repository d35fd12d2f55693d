package recommend

import (
	"fmt"

	"github.com/sells-group/localmind/internal/model"
)

// InsightSummary is the headline block of aggregated market insights.
type InsightSummary struct {
	TotalCompetitors int     `json:"total_competitors"`
	MarketScore      float64 `json:"market_score"`
	TopOpportunity   string  `json:"top_opportunity"`
	CompetitionLevel string  `json:"competition_level"`
}

// Insights aggregates competitor, market, and opportunity data into the
// narrative blocks of a market scan.
type Insights struct {
	Summary        InsightSummary `json:"summary"`
	KeyFindings    []string       `json:"key_findings"`
	ActionItems    []string       `json:"action_items"`
	RiskFactors    []string       `json:"risk_factors"`
	SuccessFactors []string       `json:"success_factors"`
}

// MarketInsights builds aggregated insights. marketScore is the 1-10 overview
// score and categoryCount the number of distinct categories observed in the
// market.
func MarketInsights(competitors []model.Business, marketScore float64, categoryCount int, opportunities []Opportunity) Insights {
	topOpportunity := "No clear opportunities"
	if len(opportunities) > 0 {
		topOpportunity = opportunities[0].Category
	}

	return Insights{
		Summary: InsightSummary{
			TotalCompetitors: len(competitors),
			MarketScore:      marketScore,
			TopOpportunity:   topOpportunity,
			CompetitionLevel: competitionLevel(len(competitors), marketScore),
		},
		KeyFindings:    keyFindings(len(competitors), marketScore, opportunities),
		ActionItems:    actionItems(marketScore, opportunities),
		RiskFactors:    riskFactors(competitors, marketScore),
		SuccessFactors: successFactors(marketScore, categoryCount, opportunities),
	}
}

func competitionLevel(competitorCount int, marketScore float64) string {
	switch {
	case competitorCount < 5 && marketScore < 5:
		return "Low"
	case competitorCount < 15 && marketScore < 7:
		return "Medium"
	default:
		return "High"
	}
}

func keyFindings(competitorCount int, marketScore float64, opportunities []Opportunity) []string {
	findings := []string{}

	if competitorCount < 5 {
		findings = append(findings, "Low competition environment presents first-mover advantages")
	} else if competitorCount > 15 {
		findings = append(findings, "Highly competitive market requires strong differentiation strategy")
	}

	if marketScore > 7 {
		findings = append(findings, "High market activity indicates strong consumer demand")
	} else if marketScore < 3 {
		findings = append(findings, "Emerging market with potential for growth")
	}

	if len(opportunities) > 0 {
		top := opportunities[0]
		findings = append(findings, fmt.Sprintf("Top opportunity identified: %s with %.1f score", top.Category, top.Score))
	}

	return findings
}

func actionItems(marketScore float64, opportunities []Opportunity) []string {
	actions := []string{}

	if marketScore < 4 {
		actions = append(actions,
			"Conduct additional market validation through local surveys",
			"Consider phased market entry approach")
	} else if marketScore > 7 {
		actions = append(actions,
			"Move quickly to establish market presence",
			"Prepare for competitive response strategies")
	}

	if len(opportunities) > 0 {
		actions = append(actions,
			fmt.Sprintf("Research %s market requirements", opportunities[0].Category),
			"Validate opportunity through local community engagement")
	}

	actions = append(actions,
		"Monitor competitor activities and market changes",
		"Develop unique value proposition for market differentiation")

	return actions
}

func riskFactors(competitors []model.Business, marketScore float64) []string {
	risks := []string{}

	if len(competitors) > 10 {
		risks = append(risks, "High competition may impact market share and pricing power")
	}
	if marketScore > 8 {
		risks = append(risks, "Market saturation risk - new entrants may struggle")
	}

	strong := 0
	for _, c := range competitors {
		if c.Rating > 4.3 {
			strong++
		}
	}
	if strong > 3 {
		risks = append(risks, "Multiple strong competitors present - differentiation critical")
	}

	if marketScore < 3 {
		risks = append(risks, "Low market activity may indicate limited consumer demand")
	}

	return risks
}

func successFactors(marketScore float64, categoryCount int, opportunities []Opportunity) []string {
	factors := []string{}

	if marketScore >= 4 && marketScore <= 7 {
		factors = append(factors, "Balanced market conditions favor new entrants")
	}

	for _, opp := range opportunities {
		if opp.Score > 7 {
			factors = append(factors, "High-scoring opportunities identified in market gaps")
			break
		}
	}

	if categoryCount > 8 {
		factors = append(factors, "Diverse business ecosystem supports cross-customer traffic")
	}

	factors = append(factors,
		"Local market shows consistent business activity",
		"Multiple entry strategies available based on opportunity analysis",
		"Market intelligence provides competitive advantage over uninformed competitors")

	return factors
}
