package guardrails

import (
	"regexp"
	"strings"
	"unicode"
)

// rewriteRule maps an advice-shaped query onto an educational question.
// Replacements may reference capture groups from the pattern.
type rewriteRule struct {
	re          *regexp.Regexp
	replacement string
}

var adviceRewriteRules = []rewriteRule{
	// Buy advice becomes a risk question.
	{
		regexp.MustCompile(`should\s+i\s+buy\s+(.+?)(\?|$)`),
		"Can you help me understand the risks and considerations when evaluating ${1}?",
	},
	// Sell advice becomes a portfolio-fit question.
	{
		regexp.MustCompile(`should\s+i\s+sell\s+(.+?)(\?|$)`),
		"Can you help me understand how ${1} fits in my portfolio and what factors to consider?",
	},
	// Best-pick requests become evaluation questions.
	{
		regexp.MustCompile(`(what|which)\s+is\s+the\s+best\s+(stock|fund|investment)`),
		"Can you help me understand how to evaluate different ${2} options based on my goals?",
	},
	// Timing requests become factor questions.
	{
		regexp.MustCompile(`when\s+should\s+i\s+(buy|sell|invest)`),
		"Can you help me understand what factors influence ${1} decisions?",
	},
	// Predictions become factor questions.
	{
		regexp.MustCompile(`will\s+(.+?)\s+(go\s+up|rise|fall|crash)`),
		"Can you help me understand what factors might influence ${1}'s performance?",
	},
}

// RewriteAdviceQuery redirects an advice-seeking query into an
// educational one instead of refusing it outright. The second return
// value reports whether a rewrite happened.
func RewriteAdviceQuery(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range adviceRewriteRules {
		if rule.re.MatchString(lower) {
			rewritten := rule.re.ReplaceAllString(lower, rule.replacement)
			return capitalizeFirst(rewritten), true
		}
	}
	return text, false
}

// RewritePanicQuery leaves the query intact but prepends context so the
// downstream responder acknowledges the user's state before answering.
func RewritePanicQuery(text string) string {
	const acknowledgment = "[USER CONTEXT: The user appears anxious or concerned. " +
		"Please acknowledge their feelings first before providing information.]\n\n"
	return acknowledgment + text
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
