// internal/handlers/upload/preview-import/models.go
package previewimport

import (
	"wealthlens-api/internal/mapping"
	"wealthlens-api/internal/models"
)

// Response is the preview payload the upload wizard renders before the
// user confirms (or overrides) the detected mappings.
type Response struct {
	Success         bool                    `json:"success"`
	SessionID       string                  `json:"session_id"`
	Holdings        []models.ParsedHolding  `json:"holdings"`
	DetectedColumns []mapping.ColumnMapping `json:"detected_columns"`
	Warnings        []string                `json:"warnings"`
	Summary         Summary                 `json:"summary"`
}

type Summary struct {
	FileName       string `json:"file_name"`
	TotalRows      int    `json:"total_rows"`
	ValidRows      int    `json:"valid_rows"`
	SkippedRows    int    `json:"skipped_rows"`
	TotalColumns   int    `json:"total_columns"`
	IgnoredColumns int    `json:"ignored_columns"`
}
