package guardrails

import "regexp"

var guaranteeRules = []patternRule{
	{regexp.MustCompile(`\bguarantee(d)?\s+(return|profit|gain)s?\b`), "Guaranteed returns request"},
	{regexp.MustCompile(`\bguaranteed\s+returns?\b`), "Guaranteed returns request"},
	{regexp.MustCompile(`\bgive\s+me\s+guaranteed\b`), "Guaranteed request"},
	{regexp.MustCompile(`\bassured\s+(return|profit|gain)s?\b`), "Assured returns request"},
	{regexp.MustCompile(`\bfixed\s+returns?\b`), "Fixed return request"},
	{regexp.MustCompile(`\brisk[- ]?free\s+(return|investment|option)\b`), "Risk-free request"},
	{regexp.MustCompile(`\b100\s*%\s*safe\b`), "100% safe request"},
	{regexp.MustCompile(`\bno\s+(risk|loss)\b`), "No risk request"},
	{regexp.MustCompile(`\bzero\s+risk\b`), "Zero risk request"},
	{regexp.MustCompile(`\bsafe\s+investment\s+with\s+high\s+return\b`), "Safe high return request"},
	{regexp.MustCompile(`\bdouble\s+(my|your)\s+money\b`), "Double money request"},
}

var overconfidenceOutputRules = []patternRule{
	{regexp.MustCompile(`\bwill\s+definitely\b`), "Definite prediction"},
	{regexp.MustCompile(`\bwill\s+certainly\b`), "Certain prediction"},
	{regexp.MustCompile(`\bguaranteed\s+to\b`), "Guarantee language"},
	{regexp.MustCompile(`\bcertain\s+to\b`), "Certainty language"},
	{regexp.MustCompile(`\bwithout\s+(a\s+)?doubt\b`), "No doubt language"},
	{regexp.MustCompile(`\b100\s*%\b`), "100% certainty"},
	{regexp.MustCompile(`\bno\s+risk\b`), "No risk claim"},
	{regexp.MustCompile(`\bcan'?t\s+(go\s+)?wrong\b`), "Can't go wrong claim"},
	{regexp.MustCompile(`\bsure\s+thing\b`), "Sure thing language"},
	{regexp.MustCompile(`\babsolutely\s+(will|certain)\b`), "Absolute certainty"},
}

// DetectGuaranteeRequest reports whether the user is asking for
// guaranteed or risk-free returns. No investment can promise either, so
// these refuse.
func DetectGuaranteeRequest(text string) Result {
	return detectFirst("guarantee_request_detector", TypeOverconfidence, SeverityCritical, guaranteeRules, text)
}

// DetectOverconfidenceInOutput reports whether generated text slipped
// into certainty language that must be softened before delivery.
func DetectOverconfidenceInOutput(text string) Result {
	return detectFirst("overconfidence_output_detector", TypeOverconfidence, SeverityHigh, overconfidenceOutputRules, text)
}
