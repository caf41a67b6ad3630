// internal/handlers/copilot/sanitize-response/models.go
package sanitizeresponse

import "wealthlens-api/internal/guardrails"

// Request carries model output headed back to the user.
type Request struct {
	Text string `json:"text"`
}

type Response struct {
	SanitizedText string              `json:"sanitized_text"`
	Sanitizations []string            `json:"sanitizations"`
	Results       []guardrails.Result `json:"results"`
}
