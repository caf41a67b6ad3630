package guardrails

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectBuyAdviceRequest(t *testing.T) {
	triggering := []string{
		"Should I buy HDFC Bank?",
		"What stock should buy now?",
		"Is Reliance a good buy?",
		"What's the best fund to buy?",
		"Give me a buy tip",
		"What to buy in this market?",
		"TCS buy karna chahiye kya?",
	}
	for _, query := range triggering {
		result := DetectBuyAdviceRequest(query)
		assert.True(t, result.Triggered, "should trigger: %s", query)
		assert.Equal(t, TypeAdvice, result.Type)
		assert.Equal(t, SeverityCritical, result.Severity)
		assert.Equal(t, "buy_advice_detector", result.Name)
		assert.NotEmpty(t, result.Reason)
		assert.NotEmpty(t, result.MatchedPattern)
	}

	safe := []string{
		"How is my portfolio doing?",
		"Explain how SIP works",
		"What did I pay for my HDFC shares?",
	}
	for _, query := range safe {
		result := DetectBuyAdviceRequest(query)
		assert.False(t, result.Triggered, "should not trigger: %s", query)
		assert.Empty(t, result.Reason)
	}
}

func TestDetectSellAdviceRequest(t *testing.T) {
	triggering := []string{
		"Should I sell my ICICI shares?",
		"Should I exit before it falls more?",
		"Should I redeem my investments?",
		"Should I book my profits now?",
		"Should I cut my losses?",
		"Is it time to sell?",
		"Portfolio exit karna chahiye?",
	}
	for _, query := range triggering {
		result := DetectSellAdviceRequest(query)
		assert.True(t, result.Triggered, "should trigger: %s", query)
		assert.Equal(t, SeverityCritical, result.Severity)
	}

	result := DetectSellAdviceRequest("I sold some shares last year")
	assert.False(t, result.Triggered)
}

func TestDetectTimingAdviceRequest(t *testing.T) {
	triggering := []string{
		"When should I buy?",
		"Is this a good time to invest?",
		"Should I wait for a dip?",
		"Should I buy the dip?",
		"What's the best entry point?",
		"Can I time the market?",
	}
	for _, query := range triggering {
		result := DetectTimingAdviceRequest(query)
		assert.True(t, result.Triggered, "should trigger: %s", query)
		assert.Equal(t, TypeAdvice, result.Type)
	}
}

func TestDetectAnyAdviceRequest(t *testing.T) {
	anyTriggered, results := DetectAnyAdviceRequest("Should I buy HDFC Bank?")
	assert.True(t, anyTriggered)
	for _, r := range results {
		assert.True(t, r.Triggered, "only triggered results are returned")
	}

	anyTriggered, results = DetectAnyAdviceRequest("Explain diversification")
	assert.False(t, anyTriggered)
	assert.Len(t, results, 3, "clean runs return every detector result")
}

func TestDetectPanicLanguage(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		expectTriggered  bool
		expectedSeverity Severity
	}{
		{
			name:             "panic plus crash scores high",
			text:             "I'm panicking! The market is crashing!",
			expectTriggered:  true,
			expectedSeverity: SeverityHigh,
		},
		{
			name:             "lost everything",
			text:             "I've lost everything! What do I do?",
			expectTriggered:  true,
			expectedSeverity: SeverityHigh,
		},
		{
			name:             "single medium indicator",
			text:             "I'm scared about my portfolio",
			expectTriggered:  true,
			expectedSeverity: SeverityMedium,
		},
		{
			name:             "market bleeding",
			text:             "The market is bleeding and I'm terrified",
			expectTriggered:  true,
			expectedSeverity: SeverityHigh,
		},
		{
			name:            "calm market question",
			text:            "Why did the market dip today?",
			expectTriggered: false,
		},
		{
			name:            "neutral portfolio question",
			text:            "How is my portfolio allocated?",
			expectTriggered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectPanicLanguage(tt.text)
			assert.Equal(t, tt.expectTriggered, result.Triggered)
			assert.Equal(t, TypePanic, result.Type)
			if tt.expectTriggered {
				assert.Equal(t, tt.expectedSeverity, result.Severity)
				assert.Contains(t, result.Reason, "Panic indicators detected")
			}
		})
	}
}

func TestDetectUrgencyLanguage(t *testing.T) {
	triggering := []string{
		"I need to act immediately",
		"Tell me right now",
		"Reply ASAP please",
		"This is urgent",
		"Is it now or never??",
	}
	for _, query := range triggering {
		result := DetectUrgencyLanguage(query)
		assert.True(t, result.Triggered, "should trigger: %s", query)
		assert.Equal(t, SeverityMedium, result.Severity)
	}

	result := DetectUrgencyLanguage("No rush, whenever you can")
	assert.False(t, result.Triggered)
}

func TestDetectEmotionalDistress(t *testing.T) {
	anyTriggered, results := DetectEmotionalDistress("Help!! I'm terrified of losing more!")
	assert.True(t, anyTriggered)
	assert.NotEmpty(t, results)

	anyTriggered, results = DetectEmotionalDistress("What is an index fund?")
	assert.False(t, anyTriggered)
	assert.Len(t, results, 2)
}

func TestDetectGuaranteeRequest(t *testing.T) {
	triggering := []string{
		"Give me guaranteed returns",
		"I want assured profits",
		"Show me a risk-free investment",
		"Something 100% safe please",
		"I want zero risk options",
		"How do I double my money?",
	}
	for _, query := range triggering {
		result := DetectGuaranteeRequest(query)
		assert.True(t, result.Triggered, "should trigger: %s", query)
		assert.Equal(t, TypeOverconfidence, result.Type)
		assert.Equal(t, SeverityCritical, result.Severity)
	}

	result := DetectGuaranteeRequest("What returns has this fund delivered?")
	assert.False(t, result.Triggered)
}

func TestDetectOverconfidenceInOutput(t *testing.T) {
	triggering := []string{
		"This fund will definitely outperform.",
		"It is guaranteed to deliver.",
		"You can't go wrong with index funds.",
		"There is no risk in this plan.",
	}
	for _, output := range triggering {
		result := DetectOverconfidenceInOutput(output)
		assert.True(t, result.Triggered, "should trigger: %s", output)
		assert.Equal(t, SeverityHigh, result.Severity)
	}

	result := DetectOverconfidenceInOutput("Equity returns vary year to year.")
	assert.False(t, result.Triggered)
}

func TestDetectPredictionRequest(t *testing.T) {
	triggering := []string{
		"Will the market go up tomorrow?",
		"Where will Nifty be in 6 months?",
		"Predict the market for next week",
		"What's the target price for TCS?",
		"Give me a forecast",
		"What is the expected return next year?",
	}
	for _, query := range triggering {
		result := DetectPredictionRequest(query)
		assert.True(t, result.Triggered, "should trigger: %s", query)
		assert.Equal(t, TypePrediction, result.Type)
		assert.Equal(t, SeverityCritical, result.Severity)
	}

	result := DetectPredictionRequest("How has the market moved historically?")
	assert.False(t, result.Triggered)
}

func TestDetectPredictionInOutput(t *testing.T) {
	triggering := []string{
		"The index will rise over the next quarter.",
		"This stock will go down soon.",
		"It is expected to reach 25000.",
		"Nifty is likely to hit a new high.",
	}
	for _, output := range triggering {
		result := DetectPredictionInOutput(output)
		assert.True(t, result.Triggered, "should trigger: %s", output)
	}

	result := DetectPredictionInOutput("Past returns do not predict future performance.")
	assert.False(t, result.Triggered)
}

func TestRewriteAdviceQuery(t *testing.T) {
	rewritten, changed := RewriteAdviceQuery("Should I buy HDFC Bank?")
	assert.True(t, changed)
	assert.Contains(t, rewritten, "risks and considerations when evaluating hdfc bank")
	assert.Equal(t, "C", rewritten[:1], "rewritten query starts with a capital")

	rewritten, changed = RewriteAdviceQuery("Should I sell my small cap fund?")
	assert.True(t, changed)
	assert.Contains(t, rewritten, "fits in my portfolio")

	rewritten, changed = RewriteAdviceQuery("When should I invest?")
	assert.True(t, changed)
	assert.Contains(t, rewritten, "factors influence invest decisions")

	original := "Explain how SIP works"
	rewritten, changed = RewriteAdviceQuery(original)
	assert.False(t, changed)
	assert.Equal(t, original, rewritten)
}

func TestRewritePanicQuery(t *testing.T) {
	out := RewritePanicQuery("The market is crashing, what now?")
	assert.Contains(t, out, "USER CONTEXT")
	assert.Contains(t, out, "The market is crashing, what now?")
}
