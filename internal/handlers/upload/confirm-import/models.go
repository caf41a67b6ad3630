// internal/handlers/upload/confirm-import/models.go
package confirmimport

type Response struct {
	Success       bool     `json:"success"`
	ImportedCount int      `json:"imported_count"`
	Warnings      []string `json:"warnings,omitempty"`
}
