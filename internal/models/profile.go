package models

import "time"

// PortfolioSnapshot is the declared allocation percentages for a user.
// Percentages are not required to sum to 100; the tolerance window is only
// used for confidence scoring.
type PortfolioSnapshot struct {
	EquityPct float64 `json:"equity"`
	DebtPct   float64 `json:"debt"`
	CashPct   float64 `json:"cash"`
}

// RiskAnalysis is the computed risk profile for a user.
type RiskAnalysis struct {
	Label       string `json:"label"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// GoalAlignment is the verdict on whether the declared portfolio matches
// the stated horizon, with at least one suggestion.
type GoalAlignment struct {
	Alignment   string   `json:"alignment"`
	Suggestions []string `json:"suggestions"`
}

// OnboardingSnapshot is the persisted record capturing a user's declared
// goals, horizon, risk answers, and computed profile at a point in time.
type OnboardingSnapshot struct {
	UserID            string            `json:"user_id"`
	Goals             string            `json:"goals"`
	HorizonYears      int               `json:"horizon_years"`
	RiskAnswers       []string          `json:"risk_answers"`
	PortfolioSnapshot PortfolioSnapshot `json:"portfolio_snapshot"`
	RiskLabel         string            `json:"risk_label"`
	RiskScore         int               `json:"risk_score"`
	Confidence        string            `json:"confidence"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// UserProfile is the persisted computed profile keyed by user.
type UserProfile struct {
	UserID          string    `json:"user_id"`
	RiskLabel       string    `json:"risk_label"`
	RiskScore       int       `json:"risk_score"`
	RiskDescription string    `json:"risk_description"`
	Confidence      string    `json:"confidence"`
	UpdatedAt       time.Time `json:"updated_at"`
}
