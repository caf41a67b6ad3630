// Package mapping maps uploaded spreadsheet column headers onto the fixed
// set of holding fields. Detection is an ordered pattern cascade; columns
// holding derived market data are ignored outright so a bad guess never
// flows into a financial field.
package mapping

// TargetField is a holding field a column can map to.
type TargetField string

const (
	FieldSymbol       TargetField = "symbol"
	FieldISIN         TargetField = "isin"
	FieldName         TargetField = "name"
	FieldQuantity     TargetField = "quantity"
	FieldAveragePrice TargetField = "average_price"
	FieldAssetType    TargetField = "asset_type"
	FieldIgnore       TargetField = "ignore"
)

// Confidence expresses how sure the detector is about a mapping.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceManual Confidence = "manual"
)

// ColumnMapping is the per-header mapping decision. One is produced for
// every header in an uploaded file; none survives past the upload session.
type ColumnMapping struct {
	Header       string      `json:"header"`
	TargetField  TargetField `json:"target_field"`
	Confidence   Confidence  `json:"confidence"`
	IsIgnored    bool        `json:"is_ignored"`
	IgnoreReason string      `json:"ignore_reason,omitempty"`
}

var knownTargetFields = map[TargetField]bool{
	FieldSymbol:       true,
	FieldISIN:         true,
	FieldName:         true,
	FieldQuantity:     true,
	FieldAveragePrice: true,
	FieldAssetType:    true,
	FieldIgnore:       true,
}

// IsKnownTargetField reports whether a user-supplied override names a
// field the importer understands.
func IsKnownTargetField(field TargetField) bool {
	return knownTargetFields[field]
}

// MapColumns produces exactly one ColumnMapping per header. Ignore
// patterns are checked first; only headers that survive go through field
// detection.
func MapColumns(headers []string) []ColumnMapping {
	mappings := make([]ColumnMapping, 0, len(headers))
	for _, header := range headers {
		mappings = append(mappings, MapColumn(header))
	}
	return mappings
}

// MapColumn maps a single header.
func MapColumn(header string) ColumnMapping {
	if ignored, reason := ShouldIgnoreColumn(header); ignored {
		return ColumnMapping{
			Header:       header,
			TargetField:  FieldIgnore,
			Confidence:   ConfidenceHigh,
			IsIgnored:    true,
			IgnoreReason: reason,
		}
	}

	field, confidence := DetectColumnMapping(header)
	return ColumnMapping{
		Header:      header,
		TargetField: field,
		Confidence:  confidence,
		IsIgnored:   field == FieldIgnore,
	}
}

// Override applies a user's manual choice of target field to an existing
// mapping. Confidence always becomes manual and the ignored flag is
// recomputed from the chosen field.
func Override(m ColumnMapping, field TargetField) ColumnMapping {
	m.TargetField = field
	m.Confidence = ConfidenceManual
	m.IsIgnored = field == FieldIgnore
	if !m.IsIgnored {
		m.IgnoreReason = ""
	}
	return m
}
