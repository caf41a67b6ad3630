// internal/handlers/copilot/screen-query/models.go
package screenquery

import "wealthlens-api/internal/guardrails"

// Request is a user query headed for the copilot model.
type Request struct {
	Query string `json:"query"`
}

// Response is the screening verdict. RewrittenQuery is set only when the
// action is rewrite or calm; for calm it is the original query with the
// acknowledgment context prepended.
type Response struct {
	Action         guardrails.Action   `json:"action"`
	ShouldBlock    bool                `json:"should_block"`
	Results        []guardrails.Result `json:"results"`
	RewrittenQuery string              `json:"rewritten_query,omitempty"`
}
