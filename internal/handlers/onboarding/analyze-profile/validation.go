// internal/handlers/onboarding/analyze-profile/validation.go
package analyzeprofile

import (
	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/validation"
	"wealthlens-api/internal/models"
)

var requestSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"user_id"},
	"properties": map[string]interface{}{
		"user_id": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"portfolio_snapshot": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"equity": map[string]interface{}{"type": "number"},
				"debt":   map[string]interface{}{"type": "number"},
				"cash":   map[string]interface{}{"type": "number"},
			},
		},
		"horizon_years": map[string]interface{}{
			"type":    "integer",
			"minimum": 0,
		},
		"risk_answers": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"goals": map[string]interface{}{
			"type": "string",
		},
	},
}

// validateRequest checks the decoded body before defaulting. A missing or
// empty user_id gets its own error code; everything else surfaces as a
// schema validation failure.
func validateRequest(raw map[string]interface{}) error {
	userID, _ := raw["user_id"].(string)
	if userID == "" {
		return apierrors.NewMissingUserIDError()
	}

	result, err := validation.ValidateAgainstSchema(raw, requestSchema)
	if err != nil {
		return apierrors.NewInternalError(err)
	}
	if !result.Valid {
		return apierrors.NewValidationFailedError(result.Summary())
	}
	return nil
}

// applyDefaults fills every optional field so the pure scoring functions
// always see complete input.
func applyDefaults(req *Request) {
	if req.PortfolioSnapshot == nil {
		req.PortfolioSnapshot = &models.PortfolioSnapshot{
			EquityPct: 60,
			DebtPct:   30,
			CashPct:   10,
		}
	}
	if req.HorizonYears == nil {
		horizon := 10
		req.HorizonYears = &horizon
	}
	if len(req.RiskAnswers) == 0 {
		req.RiskAnswers = []string{"worried_but_stay_invested"}
	}
	if req.Goals == "" {
		req.Goals = "long_term_wealth"
	}
}
