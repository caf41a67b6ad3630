package mapping

import (
	"regexp"
	"strings"
)

// ignoreRule marks a header as derived/calculated data that must never be
// imported. First match wins and supplies the reason shown to the user.
type ignoreRule struct {
	pattern *regexp.Regexp
	reason  string
}

var ignoreRules = []ignoreRule{
	{regexp.MustCompile(`current\s*value|market\s*value|present\s*value`), "Calculated from market prices"},
	{regexp.MustCompile(`p\s*&\s*l|\bpnl\b|profit\s*(and|/|&)?\s*loss`), "Profit and loss is calculated"},
	{regexp.MustCompile(`\breturns?\b|\bgain\s*%|\babs\.?\s*return`), "Returns are calculated"},
	{regexp.MustCompile(`day.?s?\s*(change|gain|loss|p&l)|\b1d\b|today.?s?\s*(change|gain|loss)`), "Daily change is calculated"},
	{regexp.MustCompile(`unreali[sz]ed`), "Unrealized gains are calculated"},
	{regexp.MustCompile(`reali[sz]ed`), "Realized gains are calculated"},
	{regexp.MustCompile(`\bxirr\b|\bcagr\b`), "Computed return metric"},
	{regexp.MustCompile(`\bnav\b|\bltp\b|\bcmp\b|current\s*price|market\s*price|last\s*(traded\s*)?price|closing\s*price`), "Live market price, not purchase data"},
	{regexp.MustCompile(`(transaction|order|trade|folio|ref)\s*(id|no|number)|\btxn\b`), "Transaction identifier"},
	{regexp.MustCompile(`\bdate\b`), "Dates are not imported"},
	{regexp.MustCompile(`\bstatus\b|\bremarks?\b`), "Status or remark column"},
}

// ShouldIgnoreColumn tests a header (case-insensitive) against the ordered
// ignore list. The returned reason is non-empty whenever ignore is true.
func ShouldIgnoreColumn(header string) (bool, string) {
	h := strings.ToLower(strings.TrimSpace(header))
	for _, rule := range ignoreRules {
		if rule.pattern.MatchString(h) {
			return true, rule.reason
		}
	}
	return false, ""
}

// detectRule maps a normalized header to a target field. Rules are tried
// in declared order; exact rules carry high confidence, loose rules
// medium. ISIN outranks everything, so a header matching both an ISIN
// pattern and a generic one resolves to ISIN.
type detectRule struct {
	pattern    *regexp.Regexp
	field      TargetField
	confidence Confidence
}

var detectRules = []detectRule{
	// ISIN (highest priority)
	{regexp.MustCompile(`isin`), FieldISIN, ConfidenceHigh},

	// Symbol / ticker
	{regexp.MustCompile(`^(symbol|ticker|scrip|trading_symbol|stock_code)$`), FieldSymbol, ConfidenceHigh},
	{regexp.MustCompile(`symbol|ticker|(^|_)scrip(_|$)`), FieldSymbol, ConfidenceMedium},

	// Name / company / security
	{regexp.MustCompile(`^(name|company|security|stock_name|company_name|security_name|instrument)$`), FieldName, ConfidenceHigh},
	{regexp.MustCompile(`name|company|security|instrument`), FieldName, ConfidenceMedium},

	// Quantity / units / shares
	{regexp.MustCompile(`^(quantity|qty|units|shares|no_of_shares|num_shares)$`), FieldQuantity, ConfidenceHigh},
	{regexp.MustCompile(`quantity|qty|units|shares`), FieldQuantity, ConfidenceMedium},

	// Average / buy price. Current/market price wording is deliberately
	// excluded; those headers are caught by the ignore list before
	// detection runs.
	{regexp.MustCompile(`^(avg_price|average_price|buy_price|purchase_price|avg_cost|average_cost|cost_price|buy_avg)$`), FieldAveragePrice, ConfidenceHigh},
	{regexp.MustCompile(`(avg|average|buy|purchase|cost).*(price|rate|cost|value)|price`), FieldAveragePrice, ConfidenceMedium},

	// Asset type / category
	{regexp.MustCompile(`^(asset_type|asset_class|instrument_type|type)$`), FieldAssetType, ConfidenceHigh},
	{regexp.MustCompile(`asset|category|segment|class`), FieldAssetType, ConfidenceMedium},
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeHeader lowercases a header and collapses separators into
// underscores ("Avg. Price " -> "avg_price").
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = nonAlnum.ReplaceAllString(h, "_")
	return strings.Trim(h, "_")
}

// DetectColumnMapping maps a header to a target field with a confidence.
// Headers matching nothing default to ignore with low confidence rather
// than guessing into a financial field.
func DetectColumnMapping(header string) (TargetField, Confidence) {
	h := normalizeHeader(header)
	if h == "" {
		return FieldIgnore, ConfidenceLow
	}
	for _, rule := range detectRules {
		if rule.pattern.MatchString(h) {
			return rule.field, rule.confidence
		}
	}
	return FieldIgnore, ConfidenceLow
}
