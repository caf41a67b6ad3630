package mapping

import (
	"fmt"
	"strconv"
	"strings"

	"wealthlens-api/internal/models"
)

// ApplyMappings converts raw spreadsheet rows into holdings using the
// per-column mappings. Ignored columns are skipped. Rows carrying
// neither a symbol nor an ISIN produce a warning instead of an error;
// rows that are entirely empty are dropped silently.
func ApplyMappings(mappings []ColumnMapping, rows [][]string) ([]models.ParsedHolding, []string) {
	var holdings []models.ParsedHolding
	var warnings []string

	for i, row := range rows {
		if rowIsEmpty(row) {
			continue
		}

		holding := models.ParsedHolding{RowNumber: i + 2} // 1-based, after the header row
		for col, m := range mappings {
			if col >= len(row) || m.IsIgnored {
				continue
			}
			value := strings.TrimSpace(row[col])
			if value == "" {
				continue
			}

			switch m.TargetField {
			case FieldSymbol:
				holding.Symbol = value
			case FieldISIN:
				holding.ISIN = strings.ToUpper(value)
			case FieldName:
				holding.Name = value
			case FieldQuantity:
				holding.Quantity = parseNumber(value)
			case FieldAveragePrice:
				holding.AveragePrice = parseNumber(value)
			case FieldAssetType:
				holding.AssetType = strings.ToLower(value)
			}
		}

		if holding.Symbol == "" && holding.ISIN == "" {
			warnings = append(warnings,
				fmt.Sprintf("row %d has neither a symbol nor an ISIN and will not be imported", holding.RowNumber))
			continue
		}
		holdings = append(holdings, holding)
	}

	return holdings, warnings
}

var numberCleaner = strings.NewReplacer(
	",", "",
	"₹", "",
	"$", "",
	"Rs.", "",
	"Rs", "",
	"INR", "",
	" ", "",
)

// parseNumber reads user-formatted numbers ("1,234.50", "₹ 500").
// Unparseable values become zero; the row-level warning above covers the
// cases that matter.
func parseNumber(value string) float64 {
	cleaned := numberCleaner.Replace(value)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
