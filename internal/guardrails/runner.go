package guardrails

import (
	"wealthlens-api/internal/common/logger"
)

// preDetectors run on user input, postDetectors on generated output.
var preDetectors = []func(string) Result{
	DetectBuyAdviceRequest,
	DetectSellAdviceRequest,
	DetectTimingAdviceRequest,
	DetectPanicLanguage,
	DetectUrgencyLanguage,
	DetectGuaranteeRequest,
	DetectPredictionRequest,
}

var postDetectors = []func(string) Result{
	DetectOverconfidenceInOutput,
	DetectPredictionInOutput,
}

// Runner composes the detectors and sanitizers into the screening
// pipelines and logs every trigger for audit.
type Runner struct {
	logger logger.Logger
}

func NewRunner(log logger.Logger) *Runner {
	return &Runner{logger: log}
}

// Screening is the verdict for a user query.
type Screening struct {
	Results     []Result
	ShouldBlock bool
	Action      Action
}

// RunPreScreen runs every input detector and resolves the action.
// Precedence: any critical trigger refuses, then panic-type triggers
// calm, then anything else rewrites. No triggers means proceed.
func (r *Runner) RunPreScreen(text string) Screening {
	results := make([]Result, 0, len(preDetectors))
	for _, detect := range preDetectors {
		result := detect(text)
		r.logTrigger(result)
		results = append(results, result)
	}

	var triggered []Result
	for _, res := range results {
		if res.Triggered {
			triggered = append(triggered, res)
		}
	}

	if len(triggered) == 0 {
		return Screening{Results: results, Action: ActionProceed}
	}

	for _, res := range triggered {
		if res.Severity == SeverityCritical {
			return Screening{Results: results, ShouldBlock: true, Action: ActionRefuse}
		}
	}

	for _, res := range triggered {
		if res.Type == TypePanic {
			return Screening{Results: results, Action: ActionCalm}
		}
	}

	return Screening{Results: results, Action: ActionRewrite}
}

// RunPostScreen runs the output detectors, then sanitizes the text.
// Detection and sanitization are independent; even a clean detection
// pass still goes through the sanitizers.
func (r *Runner) RunPostScreen(text string) ([]Result, string, []string) {
	results := make([]Result, 0, len(postDetectors))
	for _, detect := range postDetectors {
		result := detect(text)
		r.logTrigger(result)
		results = append(results, result)
	}

	sanitized, applied := SanitizeOutput(text)
	if len(applied) > 0 && r.logger != nil {
		r.logger.Info("Output sanitized", map[string]interface{}{
			"sanitizations": applied,
		})
	}

	return results, sanitized, applied
}

// IsSafeQuery reports whether a query may be processed at all.
func (r *Runner) IsSafeQuery(text string) bool {
	return !r.RunPreScreen(text).ShouldBlock
}

// Summary condenses a result list for logging.
func Summary(results []Result) map[string]interface{} {
	var names []string
	var severities []string
	var types []string
	for _, res := range results {
		if res.Triggered {
			names = append(names, res.Name)
			severities = append(severities, string(res.Severity))
			types = append(types, string(res.Type))
		}
	}
	return map[string]interface{}{
		"total_checks":         len(results),
		"triggered_count":      len(names),
		"triggered_guardrails": names,
		"severities":           severities,
		"types":                types,
	}
}

func (r *Runner) logTrigger(result Result) {
	if r.logger == nil || !result.Triggered {
		return
	}
	r.logger.Warn("Guardrail triggered", map[string]interface{}{
		"guardrail": result.Name,
		"type":      string(result.Type),
		"severity":  string(result.Severity),
		"reason":    result.Reason,
		"pattern":   result.MatchedPattern,
	})
}
