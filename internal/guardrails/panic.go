package guardrails

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Panic detection is weighted rather than first-match: each matched
// indicator adds its weight to a score, and the detector triggers at
// score >= 2. A score of 4 or more escalates severity to high.

type panicRule struct {
	re     *regexp.Regexp
	reason string
	weight int
}

var panicRules = []panicRule{
	{regexp.MustCompile(`\bcrash(ing|ed)?\b`), "Crash language", 2},
	{regexp.MustCompile(`\bpanic(king)?\b`), "Panic language", 3},
	{regexp.MustCompile(`\blost\s+everything\b`), "Total loss fear", 3},
	{regexp.MustCompile(`\bwipe(d)?\s+out\b`), "Wipeout fear", 3},
	{regexp.MustCompile(`\bdisaster\b`), "Disaster language", 2},
	{regexp.MustCompile(`\bcatastroph(e|ic)\b`), "Catastrophe language", 2},
	{regexp.MustCompile(`\bscared\b`), "Fear expression", 2},
	{regexp.MustCompile(`\bterrified\b`), "Terror expression", 3},
	{regexp.MustCompile(`\bfreaking\s+out\b`), "Panic expression", 3},
	{regexp.MustCompile(`\bcan'?t\s+sleep\b`), "Anxiety indicator", 2},
	{regexp.MustCompile(`\bworried\s+sick\b`), "Severe worry", 2},
	{regexp.MustCompile(`\bwhat\s+do\s+i\s+do\?*!*$`), "Helpless question", 2},
	{regexp.MustCompile(`\bhelp\s*!+`), "Urgent help request", 2},
	{regexp.MustCompile(`\bmarket\s+(is\s+)?(falling|tanking|bleeding)\b`), "Market fear", 2},
}

var urgencyRules = []patternRule{
	{regexp.MustCompile(`\bimmediately\b`), "Immediate action request"},
	{regexp.MustCompile(`\bright\s+now\b`), "Right now urgency"},
	{regexp.MustCompile(`\basap\b`), "ASAP urgency"},
	{regexp.MustCompile(`\burgent(ly)?\b`), "Urgent language"},
	{regexp.MustCompile(`\bquick(ly)?\b`), "Quick action request"},
	{regexp.MustCompile(`\bhurry\b`), "Hurry language"},
	{regexp.MustCompile(`\bbefore\s+it'?s\s+too\s+late\b`), "Time pressure"},
	{regexp.MustCompile(`\blast\s+chance\b`), "Last chance urgency"},
	{regexp.MustCompile(`\bnow\s+or\s+never\b`), "Now or never pressure"},
	{regexp.MustCompile(`!{2,}`), "Multiple exclamation marks"},
}

// DetectPanicLanguage scores the text against the panic indicators and
// triggers when the combined weight reaches the threshold.
func DetectPanicLanguage(text string) Result {
	lower := strings.ToLower(text)

	score := 0
	var primary *panicRule
	for i, rule := range panicRules {
		if rule.re.MatchString(lower) {
			score += rule.weight
			if primary == nil {
				primary = &panicRules[i]
			}
		}
	}

	if score >= 2 {
		severity := SeverityMedium
		if score >= 4 {
			severity = SeverityHigh
		}
		return Result{
			Triggered:      true,
			Type:           TypePanic,
			Name:           "panic_language_detector",
			Reason:         fmt.Sprintf("Panic indicators detected (score: %d). Primary: %s", score, primary.reason),
			MatchedPattern: primary.re.String(),
			OriginalText:   text,
			Severity:       severity,
			Timestamp:      time.Now(),
		}
	}

	return Result{
		Type:         TypePanic,
		Name:         "panic_language_detector",
		OriginalText: text,
		Timestamp:    time.Now(),
	}
}

// DetectUrgencyLanguage reports whether the text pressures for immediate
// action. Urgency is medium severity; it slows the conversation down but
// never blocks it.
func DetectUrgencyLanguage(text string) Result {
	return detectFirst("urgency_language_detector", TypePanic, SeverityMedium, urgencyRules, text)
}

// DetectEmotionalDistress runs the panic and urgency detectors together.
func DetectEmotionalDistress(text string) (bool, []Result) {
	results := []Result{
		DetectPanicLanguage(text),
		DetectUrgencyLanguage(text),
	}

	var triggered []Result
	for _, r := range results {
		if r.Triggered {
			triggered = append(triggered, r)
		}
	}
	if len(triggered) > 0 {
		return true, triggered
	}
	return false, results
}
