package guardrails

import "regexp"

var predictionRequestRules = []patternRule{
	{regexp.MustCompile(`\bwill\s+(the\s+)?(nifty|sensex|market|stock)\s+(go\s+)?(up|down|rise|fall|crash)\b`), "Market direction prediction"},
	{regexp.MustCompile(`\bwill\s+(the\s+)?market\s+go\s+(up|down)\b`), "Market direction prediction"},
	{regexp.MustCompile(`\bwill\s+.+\s+go\s+up\b`), "Go up prediction"},
	{regexp.MustCompile(`\bwhere\s+will\s+.+\s+(be|go|reach)\b`), "Price target prediction"},
	{regexp.MustCompile(`\bpredict\s+(the\s+)?(market|stock|price)\b`), "Direct prediction request"},
	{regexp.MustCompile(`\bforecast\b`), "Forecast request"},
	{regexp.MustCompile(`\btarget\s+price\b`), "Target price request"},
	{regexp.MustCompile(`\bprice\s+target\b`), "Price target request"},
	{regexp.MustCompile(`\bwhat\s+will\s+.+\s+(be|reach)\s+in\b`), "Future value prediction"},
	{regexp.MustCompile(`\bhow\s+(much|high|low)\s+will\s+.+\s+(go|reach)\b`), "Price level prediction"},
	{regexp.MustCompile(`\bexpected\s+(return|price|growth)\b`), "Expected return request"},
}

var predictionOutputRules = []patternRule{
	{regexp.MustCompile(`\bwill\s+(go\s+)?(up|rise|increase|grow)\b`), "Upward prediction"},
	{regexp.MustCompile(`\bwill\s+(go\s+)?(down|fall|decrease|drop|crash)\b`), "Downward prediction"},
	{regexp.MustCompile(`\bexpect(ed)?\s+to\s+(reach|hit|cross)\b`), "Price expectation"},
	{regexp.MustCompile(`\bshould\s+(reach|hit|cross)\s+\d+\b`), "Price target"},
	{regexp.MustCompile(`\blikely\s+to\s+(reach|hit|go)\b`), "Likely prediction"},
	{regexp.MustCompile(`\bprobably\s+will\s+(rise|fall|go)\b`), "Probable prediction"},
}

// DetectPredictionRequest reports whether the user is asking for a
// market forecast.
func DetectPredictionRequest(text string) Result {
	return detectFirst("prediction_request_detector", TypePrediction, SeverityCritical, predictionRequestRules, text)
}

// DetectPredictionInOutput reports whether generated text contains a
// directional market prediction.
func DetectPredictionInOutput(text string) Result {
	return detectFirst("prediction_output_detector", TypePrediction, SeverityCritical, predictionOutputRules, text)
}
