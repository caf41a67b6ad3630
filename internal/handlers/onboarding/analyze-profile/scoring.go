// internal/handlers/onboarding/analyze-profile/scoring.go
package analyzeprofile

import (
	"fmt"
	"strings"

	"wealthlens-api/internal/models"
)

// The scorer is four pure functions composed by the handler: risk, then
// alignment, then summary, then confidence. None of them error and none
// of them touch anything but their arguments.

const (
	baselineScore = 50
	minScore      = 20
	maxScore      = 80
)

// Risk labels with their fixed descriptions.
const (
	LabelConservative = "Conservative"
	LabelModerate     = "Moderate"
	LabelGrowth       = "Growth"
	LabelAggressive   = "Aggressive"
)

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

const (
	AlignmentOnTrack     = "On Track"
	AlignmentNeedsReview = "Needs Review"
)

// answerDeltas maps each recognized risk answer to its score adjustment.
// Unknown answers contribute nothing; duplicates each apply in full.
var answerDeltas = map[string]int{
	"prefer_safety":               -15,
	"worried_but_stay_invested":   -5,
	"comfortable_with_volatility": 10,
	"focus_on_growth":             15,
}

var labelDescriptions = map[string]string{
	LabelConservative: "You prioritize protecting your capital over chasing returns.",
	LabelModerate:     "You balance growth with stability and accept modest ups and downs.",
	LabelGrowth:       "You are comfortable with volatility in pursuit of long-term growth.",
	LabelAggressive:   "You seek maximum growth and can ride out sharp market swings.",
}

// AnalyzeRisk derives a risk score and label from the questionnaire
// answers and the declared allocation. The equity adjustment applies
// once, regardless of how many answers were given.
func AnalyzeRisk(answers []string, snapshot models.PortfolioSnapshot) models.RiskAnalysis {
	score := baselineScore
	for _, answer := range answers {
		score += answerDeltas[answer]
	}

	// A zero equity figure means no composition was declared, so the
	// adjustment only applies to a real low-equity allocation.
	if snapshot.EquityPct > 70 {
		score += 10
	} else if snapshot.EquityPct > 0 && snapshot.EquityPct < 30 {
		score -= 10
	}

	score = clamp(score, minScore, maxScore)
	label := labelForScore(score)

	return models.RiskAnalysis{
		Label:       label,
		Score:       score,
		Description: labelDescriptions[label],
	}
}

func labelForScore(score int) string {
	switch {
	case score < 35:
		return LabelConservative
	case score < 55:
		return LabelModerate
	case score < 70:
		return LabelGrowth
	default:
		return LabelAggressive
	}
}

// AnalyzeGoalAlignment checks the declared allocation against the stated
// horizon. Both mismatch conditions can fire on the same input, producing
// two suggestions and a single Needs Review verdict. The goals parameter
// is accepted for future goal-specific rules and is not inspected yet.
func AnalyzeGoalAlignment(goals string, horizonYears int, snapshot models.PortfolioSnapshot, riskLabel string) models.GoalAlignment {
	alignment := AlignmentOnTrack
	var suggestions []string

	if horizonYears > 10 && snapshot.EquityPct < 50 {
		alignment = AlignmentNeedsReview
		suggestions = append(suggestions,
			"Your horizon is long but your equity allocation is low; consider whether more growth assets fit your comfort level.")
	}
	if horizonYears < 5 && snapshot.EquityPct > 60 {
		alignment = AlignmentNeedsReview
		suggestions = append(suggestions,
			"Your horizon is short but your equity allocation is high; consider reducing exposure to market swings.")
	}

	if snapshot.CashPct > 20 {
		suggestions = append(suggestions,
			"Over 20% of your portfolio sits in cash, which can drag on long-term returns.")
	}
	if riskLabel == LabelConservative && horizonYears > 15 {
		suggestions = append(suggestions,
			"With a horizon beyond 15 years, you may have room to take more risk than your conservative profile suggests.")
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions,
			"Your portfolio aligns well with your stated goals and horizon.")
	}

	return models.GoalAlignment{
		Alignment:   alignment,
		Suggestions: suggestions,
	}
}

// GenerateSummary produces exactly four lines, each derived
// independently: risk label, composition, horizon, alignment.
func GenerateSummary(risk models.RiskAnalysis, alignment models.GoalAlignment, snapshot models.PortfolioSnapshot, horizonYears int) []string {
	lines := make([]string, 0, 4)

	lines = append(lines,
		fmt.Sprintf("Your responses indicate a %s risk profile.", strings.ToLower(risk.Label)))

	switch {
	case snapshot.EquityPct > snapshot.DebtPct && snapshot.EquityPct > snapshot.CashPct:
		lines = append(lines, "Your portfolio leans toward equities.")
	case snapshot.DebtPct > snapshot.EquityPct && snapshot.DebtPct > snapshot.CashPct:
		lines = append(lines, "Your portfolio leans toward debt instruments.")
	default:
		lines = append(lines, "Your portfolio is balanced across asset classes.")
	}

	switch {
	case horizonYears > 10:
		lines = append(lines,
			fmt.Sprintf("With a %d-year horizon, you can focus on long-term growth.", horizonYears))
	case horizonYears > 5:
		lines = append(lines, "Your medium-term horizon suits a moderate approach.")
	default:
		lines = append(lines, "With a shorter horizon, capital preservation matters most.")
	}

	if alignment.Alignment == AlignmentOnTrack {
		lines = append(lines, "Your goals and portfolio appear to be on track.")
	} else {
		lines = append(lines, "A few adjustments could better align your portfolio with your goals.")
	}

	return lines
}

// CalculateConfidence grades how complete the inputs were. The 95 to 105
// allocation window is intentional slack for rounding in user-entered
// percentages.
func CalculateConfidence(answers []string, snapshot models.PortfolioSnapshot) string {
	points := 0

	if len(answers) > 0 {
		points += 30
	}
	if len(answers) > 1 {
		points += 20
	}

	total := snapshot.EquityPct + snapshot.DebtPct + snapshot.CashPct
	if total >= 95 && total <= 105 {
		points += 30
	}

	if snapshot.EquityPct > 0 || snapshot.DebtPct > 0 {
		points += 20
	}

	switch {
	case points >= 80:
		return ConfidenceHigh
	case points >= 50:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
