// internal/handlers/onboarding/analyze-profile/models.go
package analyzeprofile

import "wealthlens-api/internal/models"

// Request is the analyze-profile body. Everything except UserID is
// optional; absent fields are defaulted before scoring.
type Request struct {
	UserID            string                    `json:"user_id"`
	PortfolioSnapshot *models.PortfolioSnapshot `json:"portfolio_snapshot"`
	HorizonYears      *int                      `json:"horizon_years"`
	RiskAnswers       []string                  `json:"risk_answers"`
	Goals             string                    `json:"goals"`
}

type Response struct {
	RiskLabel     models.RiskAnalysis  `json:"risk_label"`
	GoalAlignment models.GoalAlignment `json:"goal_alignment"`
	Summary       []string             `json:"summary"`
	Confidence    string               `json:"confidence"`
}
