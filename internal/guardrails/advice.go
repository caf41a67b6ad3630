package guardrails

import "regexp"

// Advice detectors catch buy, sell and timing requests. These refuse
// outright; only SEBI-registered advisors may answer them.

var buyAdviceRules = []patternRule{
	{regexp.MustCompile(`\bshould\s+i\s+buy\b`), "Direct buy advice request"},
	{regexp.MustCompile(`\b(what|which)\s+(stock|share|fund|investment)\s+(should|to)\s+buy\b`), "Stock/fund recommendation request"},
	{regexp.MustCompile(`\brecommend\s+(a\s+)?(stock|share|fund|investment)\s+to\s+buy\b`), "Buy recommendation request"},
	{regexp.MustCompile(`\b(is|are)\s+.+\s+(a\s+)?good\s+buy\b`), "Buy evaluation request"},
	{regexp.MustCompile(`\bbest\s+(stock|share|fund)\s+to\s+buy\b`), "Best buy request"},
	{regexp.MustCompile(`\bgive\s+me\s+(a\s+)?buy\s+(tip|recommendation)\b`), "Buy tip request"},
	{regexp.MustCompile(`\bwhat\s+to\s+buy\b`), "General buy advice"},
	{regexp.MustCompile(`\bbuy\s+karna\s+chahiye\b`), "Hindi buy advice request"},
}

var sellAdviceRules = []patternRule{
	{regexp.MustCompile(`\bshould\s+i\s+sell\b`), "Direct sell advice request"},
	{regexp.MustCompile(`\bshould\s+i\s+(exit|redeem|withdraw)\b`), "Exit advice request"},
	{regexp.MustCompile(`\b(is\s+it|time)\s+to\s+sell\b`), "Timing sell request"},
	{regexp.MustCompile(`\bbook\s+(my\s+)?profits?\b`), "Profit booking advice"},
	{regexp.MustCompile(`\bcut\s+(my\s+)?loss(es)?\b`), "Loss cutting advice"},
	{regexp.MustCompile(`\bsell\s+karna\s+chahiye\b`), "Hindi sell advice request"},
	{regexp.MustCompile(`\bexit\s+karna\s+chahiye\b`), "Hindi exit advice request"},
}

var timingAdviceRules = []patternRule{
	{regexp.MustCompile(`\bwhen\s+should\s+i\s+(buy|sell|invest|exit)\b`), "Timing advice request"},
	{regexp.MustCompile(`\b(good|right|best)\s+time\s+to\s+(buy|sell|invest|enter|exit)\b`), "Market timing request"},
	{regexp.MustCompile(`\bwait\s+for\s+(a\s+)?(dip|correction|crash)\b`), "Dip timing request"},
	{regexp.MustCompile(`\bwait\s+and\s+watch\b`), "Wait advice request"},
	{regexp.MustCompile(`\btime\s+the\s+market\b`), "Market timing request"},
	{regexp.MustCompile(`\bbuy\s+the\s+dip\b`), "Dip buying advice"},
	{regexp.MustCompile(`\bentry\s+point\b`), "Entry timing request"},
	{regexp.MustCompile(`\bexit\s+point\b`), "Exit timing request"},
}

// DetectBuyAdviceRequest reports whether the text asks for a buy
// recommendation.
func DetectBuyAdviceRequest(text string) Result {
	return detectFirst("buy_advice_detector", TypeAdvice, SeverityCritical, buyAdviceRules, text)
}

// DetectSellAdviceRequest reports whether the text asks for a sell,
// exit or redemption recommendation.
func DetectSellAdviceRequest(text string) Result {
	return detectFirst("sell_advice_detector", TypeAdvice, SeverityCritical, sellAdviceRules, text)
}

// DetectTimingAdviceRequest reports whether the text asks for market
// timing advice.
func DetectTimingAdviceRequest(text string) Result {
	return detectFirst("timing_advice_detector", TypeAdvice, SeverityCritical, timingAdviceRules, text)
}

// DetectAnyAdviceRequest runs the three advice detectors. When any of
// them triggers, only the triggered results are returned; otherwise all
// clean results come back.
func DetectAnyAdviceRequest(text string) (bool, []Result) {
	results := []Result{
		DetectBuyAdviceRequest(text),
		DetectSellAdviceRequest(text),
		DetectTimingAdviceRequest(text),
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
