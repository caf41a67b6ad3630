// internal/handlers/copilot/sanitize-response/handler.go
package sanitizeresponse

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/common/metrics"
	"wealthlens-api/internal/guardrails"
)

const Route = "/api/copilot/sanitize-response"

type Handler struct {
	config   *Config
	runner   *guardrails.Runner
	logger   logger.Logger
	errorOut *apierrors.ErrorHandler
}

func NewHandler(config *Config, runner *guardrails.Runner, log logger.Logger, errorOut *apierrors.ErrorHandler) *Handler {
	return &Handler{
		config:   config,
		runner:   runner,
		logger:   log.WithFields(map[string]interface{}{"handler": "sanitize-response"}),
		errorOut: errorOut,
	}
}

// Handle runs model output through the post-screen detectors and the
// sanitizers. The sanitized text is always returned, even when no
// replacement fired and it equals the input.
func (h *Handler) Handle(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(err))
		return
	}
	if req.Text == "" {
		h.errorOut.Respond(c, apierrors.NewValidationFailedError("text must not be empty"))
		return
	}
	if len(req.Text) > h.config.MaxTextChars {
		h.errorOut.Respond(c, apierrors.NewValidationFailedError(
			fmt.Sprintf("text exceeds %d characters", h.config.MaxTextChars)))
		return
	}

	results, sanitized, applied := h.runner.RunPostScreen(req.Text)

	triggered := make([]guardrails.Result, 0)
	for _, res := range results {
		if res.Triggered {
			triggered = append(triggered, res)
			metrics.GuardrailTriggers.WithLabelValues(res.Name, string(res.Severity)).Inc()
		}
	}
	for _, kind := range applied {
		metrics.SanitizationsApplied.WithLabelValues(kind).Inc()
	}

	h.logger.Info("response sanitized", map[string]interface{}{
		"triggered":     len(triggered),
		"sanitizations": applied,
	})

	c.JSON(http.StatusOK, Response{
		SanitizedText: sanitized,
		Sanitizations: applied,
		Results:       triggered,
	})
}
