// internal/handlers/copilot/screen-query/handler.go
package screenquery

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "wealthlens-api/internal/common/errors"
	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/common/metrics"
	"wealthlens-api/internal/guardrails"
)

const Route = "/api/copilot/screen-query"

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
		logger:   log.WithFields(map[string]interface{}{"handler": "screen-query"}),
		errorOut: errorOut,
	}
}

// Handle screens a user query before it reaches the model. The response
// carries the triggered guardrail results and the resolved action; for
// rewrite and calm actions it also carries the query the model should
// actually receive.
func (h *Handler) Handle(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorOut.Respond(c, apierrors.NewMalformedRequestError(err))
		return
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		h.errorOut.Respond(c, apierrors.NewValidationFailedError("query must not be empty"))
		return
	}
	if len(query) > h.config.MaxQueryChars {
		h.errorOut.Respond(c, apierrors.NewValidationFailedError(
			fmt.Sprintf("query exceeds %d characters", h.config.MaxQueryChars)))
		return
	}

	screening := h.runner.RunPreScreen(query)

	triggered := make([]guardrails.Result, 0)
	for _, res := range screening.Results {
		if res.Triggered {
			triggered = append(triggered, res)
			metrics.GuardrailTriggers.WithLabelValues(res.Name, string(res.Severity)).Inc()
		}
	}

	resp := Response{
		Action:      screening.Action,
		ShouldBlock: screening.ShouldBlock,
		Results:     triggered,
	}
	switch screening.Action {
	case guardrails.ActionRewrite:
		if rewritten, changed := guardrails.RewriteAdviceQuery(query); changed {
			resp.RewrittenQuery = rewritten
		}
	case guardrails.ActionCalm:
		resp.RewrittenQuery = guardrails.RewritePanicQuery(query)
	}

	h.logger.Info("query screened", map[string]interface{}{
		"action":      string(screening.Action),
		"shouldBlock": screening.ShouldBlock,
		"triggered":   len(triggered),
	})

	c.JSON(http.StatusOK, resp)
}
