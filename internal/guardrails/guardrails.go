// Package guardrails implements deterministic safety checks for copilot
// queries and responses. Every check is a pure function over the input
// text; nothing here calls a model. Detectors return a Result describing
// what matched, sanitizers rewrite unsafe language, and Runner composes
// them into the pre and post screening pipelines.
package guardrails

import (
	"regexp"
	"strings"
	"time"
)

// Type categorizes a guardrail.
type Type string

const (
	TypeAdvice         Type = "advice"
	TypePanic          Type = "panic"
	TypeOverconfidence Type = "overconfidence"
	TypePrediction     Type = "prediction"
)

// Severity grades a triggered guardrail. Critical triggers always refuse
// the query.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Action is the screening verdict for a user query.
type Action string

const (
	ActionProceed Action = "proceed"
	ActionRefuse  Action = "refuse"
	ActionRewrite Action = "rewrite"
	ActionCalm    Action = "calm"
)

// Result is the outcome of a single guardrail check.
type Result struct {
	Triggered      bool      `json:"triggered"`
	Type           Type      `json:"guardrail_type"`
	Name           string    `json:"guardrail_name"`
	Reason         string    `json:"reason,omitempty"`
	MatchedPattern string    `json:"matched_pattern,omitempty"`
	OriginalText   string    `json:"-"`
	Severity       Severity  `json:"severity,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// patternRule pairs a compiled pattern with the reason reported when it
// matches. Rules are evaluated in declared order; first match wins.
type patternRule struct {
	re     *regexp.Regexp
	reason string
}

// detectFirst runs an ordered rule list against lowercased text and
// returns a triggered Result for the first match, or a clean Result.
func detectFirst(name string, gtype Type, severity Severity, rules []patternRule, text string) Result {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		if rule.re.MatchString(lower) {
			return Result{
				Triggered:      true,
				Type:           gtype,
				Name:           name,
				Reason:         rule.reason,
				MatchedPattern: rule.re.String(),
				OriginalText:   text,
				Severity:       severity,
				Timestamp:      time.Now(),
			}
		}
	}
	return Result{
		Type:         gtype,
		Name:         name,
		OriginalText: text,
		Timestamp:    time.Now(),
	}
}
