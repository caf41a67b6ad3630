// internal/handlers/onboarding/analyze-profile/handler.go
package analyzeprofile

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/common/metrics"
	"wealthlens-api/internal/models"
)

const Route = "/api/onboarding/analyze-profile"

type Handler struct {
	config   *Config
	service  *Service
	logger   logger.Logger
	errorOut *apierrors.ErrorHandler
}

func NewHandler(config *Config, service *Service, log logger.Logger, errorOut *apierrors.ErrorHandler) *Handler {
	return &Handler{
		config:   config,
		service:  service,
		logger:   log.WithFields(map[string]interface{}{"handler": "analyze-profile"}),
		errorOut: errorOut,
	}
}

// Handle scores the onboarding answers and returns the profile. The
// computed profile is persisted in the background; a failed save is
// logged and counted but never changes the HTTP response.
func (h *Handler) Handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(err))
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(err))
		return
	}

	if err := validateRequest(raw); err != nil {
		h.errorOut.Respond(c, err)
		return
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(err))
		return
	}
	applyDefaults(&req)

	snapshot := *req.PortfolioSnapshot
	horizon := *req.HorizonYears

	risk := AnalyzeRisk(req.RiskAnswers, snapshot)
	alignment := AnalyzeGoalAlignment(req.Goals, horizon, snapshot, risk.Label)
	summary := GenerateSummary(risk, alignment, snapshot, horizon)
	confidence := CalculateConfidence(req.RiskAnswers, snapshot)

	metrics.ProfilesAnalyzed.WithLabelValues(risk.Label, confidence).Inc()

	h.logger.Info("profile analyzed", map[string]interface{}{
		"userId":     req.UserID,
		"riskLabel":  risk.Label,
		"riskScore":  risk.Score,
		"alignment":  alignment.Alignment,
		"confidence": confidence,
	})

	if h.service != nil {
		go h.persistProfile(req, risk, confidence)
	}

	c.JSON(http.StatusOK, Response{
		RiskLabel:     risk,
		GoalAlignment: alignment,
		Summary:       summary,
		Confidence:    confidence,
	})
}

func (h *Handler) persistProfile(req Request, risk models.RiskAnalysis, confidence string) {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.PersistTimeout)
	defer cancel()

	now := time.Now().UTC()
	snapshot := models.OnboardingSnapshot{
		UserID:            req.UserID,
		Goals:             req.Goals,
		HorizonYears:      *req.HorizonYears,
		RiskAnswers:       req.RiskAnswers,
		PortfolioSnapshot: *req.PortfolioSnapshot,
		RiskLabel:         risk.Label,
		RiskScore:         risk.Score,
		Confidence:        confidence,
		UpdatedAt:         now,
	}
	profile := models.UserProfile{
		UserID:          req.UserID,
		RiskLabel:       risk.Label,
		RiskScore:       risk.Score,
		RiskDescription: risk.Description,
		Confidence:      confidence,
		UpdatedAt:       now,
	}

	if err := h.service.SaveProfile(ctx, snapshot, profile); err != nil {
		metrics.ProfileSaveFailures.Inc()
		h.logger.WithError(err).Warn("profile save failed", map[string]interface{}{
			"userId": req.UserID,
		})
	}
}
