// internal/handlers/upload/update-mapping/models.go
package updatemapping

import "wealthlens-api/internal/mapping"

// Request carries one or more user overrides of detected mappings.
type Request struct {
	Overrides []Override `json:"overrides"`
}

type Override struct {
	Header      string `json:"header"`
	TargetField string `json:"target_field"`
}

type Response struct {
	Success  bool                    `json:"success"`
	Mappings []mapping.ColumnMapping `json:"mappings"`
}
