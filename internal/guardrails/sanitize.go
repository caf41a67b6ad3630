package guardrails

import "regexp"

// Sanitizers run on generated text with case-insensitive patterns so the
// original casing of unmatched text survives.

var adviceReplacements = []rewriteRule{
	{regexp.MustCompile(`(?i)\byou\s+should\s+(buy|sell|invest|exit)\b`), "you might consider"},
	{regexp.MustCompile(`(?i)\bi\s+recommend\s+(buying|selling|investing)\b`), "one approach could be"},
	{regexp.MustCompile(`(?i)\bi\s+advise\s+(you\s+to)?\b`), "you could consider"},
	{regexp.MustCompile(`(?i)\bmy\s+advice\s+is\b`), "one perspective is"},
	{regexp.MustCompile(`(?i)\bbuy\s+this\b`), "consider this"},
	{regexp.MustCompile(`(?i)\bsell\s+this\b`), "review this"},
	{regexp.MustCompile(`(?i)\byou\s+must\s+(buy|sell|invest)\b`), "you might want to consider"},
}

var predictionReplacements = []rewriteRule{
	{regexp.MustCompile(`(?i)\bwill\s+(definitely|certainly)\s+(go\s+up|rise)\b`), "may potentially increase"},
	{regexp.MustCompile(`(?i)\bwill\s+(definitely|certainly)\s+(go\s+down|fall)\b`), "may potentially decrease"},
	{regexp.MustCompile(`(?i)\bwill\s+(go\s+up|rise|increase)\b`), "may fluctuate"},
	{regexp.MustCompile(`(?i)\bwill\s+(go\s+down|fall|decrease)\b`), "may fluctuate"},
	{regexp.MustCompile(`(?i)\bexpect(ed)?\s+to\s+reach\s+(\d+)\b`), "historically has been around ${2}"},
	{regexp.MustCompile(`(?i)\bshould\s+reach\s+(\d+)\b`), "has varied around ${1}"},
}

var overconfidenceReplacements = []rewriteRule{
	{regexp.MustCompile(`(?i)\bdefinitely\b`), "likely"},
	{regexp.MustCompile(`(?i)\bcertainly\b`), "probably"},
	{regexp.MustCompile(`(?i)\bguaranteed\b`), "expected"},
	{regexp.MustCompile(`(?i)\babsolutely\b`), "generally"},
	{regexp.MustCompile(`(?i)\bwithout\s+(a\s+)?doubt\b`), "in most cases"},
	{regexp.MustCompile(`(?i)\b100%\b`), "very likely"},
	{regexp.MustCompile(`(?i)\bno\s+risk\b`), "lower risk"},
	{regexp.MustCompile(`(?i)\bcan'?t\s+go\s+wrong\b`), "has historically performed well"},
	{regexp.MustCompile(`(?i)\bsure\s+thing\b`), "reasonable option"},
}

func applyReplacements(text string, rules []rewriteRule) string {
	result := text
	for _, rule := range rules {
		result = rule.re.ReplaceAllString(result, rule.replacement)
	}
	return result
}

// SanitizeAdviceLanguage softens advice-giving phrasing.
func SanitizeAdviceLanguage(text string) string {
	return applyReplacements(text, adviceReplacements)
}

// SanitizePredictionLanguage softens directional market predictions.
func SanitizePredictionLanguage(text string) string {
	return applyReplacements(text, predictionReplacements)
}

// SanitizeOverconfidenceLanguage softens certainty language.
func SanitizeOverconfidenceLanguage(text string) string {
	return applyReplacements(text, overconfidenceReplacements)
}

// SanitizeOutput applies the three sanitizers in order and reports which
// of them changed the text. Advice runs first, then prediction, then
// overconfidence; later passes see the output of earlier ones.
func SanitizeOutput(text string) (string, []string) {
	var applied []string
	result := text

	if next := SanitizeAdviceLanguage(result); next != result {
		applied = append(applied, "advice_language")
		result = next
	}
	if next := SanitizePredictionLanguage(result); next != result {
		applied = append(applied, "prediction_language")
		result = next
	}
	if next := SanitizeOverconfidenceLanguage(result); next != result {
		applied = append(applied, "overconfidence_language")
		result = next
	}

	return result, applied
}
