// internal/handlers/upload/confirm-import/service.go
package confirmimport

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/models"
)

// Service writes confirmed holdings into Postgres. The audit trail is
// best-effort; only the holdings write can fail the import.
type Service struct {
	db     *sql.DB
	logger logger.Logger
}

func NewService(db *sql.DB, log logger.Logger) *Service {
	return &Service{db: db, logger: log}
}

// ImportHoldings upserts every holding in one transaction, keyed by
// (user_id, symbol, isin). Returns the number of rows written.
func (s *Service) ImportHoldings(ctx context.Context, userID string, holdings []models.ParsedHolding) (int, error) {
	if len(holdings) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO holdings
			(id, user_id, symbol, isin, name, quantity, average_price, asset_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id, symbol, isin) DO UPDATE SET
			name = EXCLUDED.name,
			quantity = EXCLUDED.quantity,
			average_price = EXCLUDED.average_price,
			asset_type = EXCLUDED.asset_type,
			updated_at = NOW()`

	for _, h := range holdings {
		if _, err := tx.ExecContext(ctx, query,
			uuid.New().String(),
			userID,
			h.Symbol,
			h.ISIN,
			h.Name,
			h.Quantity,
			h.AveragePrice,
			h.AssetType,
		); err != nil {
			return 0, fmt.Errorf("upsert holding row %d: %w", h.RowNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(holdings), nil
}

// RecordAudit appends an audit_log entry. Failures are logged and
// swallowed; an import never fails because its audit entry did.
func (s *Service) RecordAudit(ctx context.Context, eventType, resourceType, resourceID string, details map[string]interface{}) {
	payload, err := json.Marshal(details)
	if err != nil {
		s.logger.WithError(err).Warn("audit details marshal failed", nil)
		return
	}

	query := `
		INSERT INTO audit_log (event_type, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, NOW())`

	if _, err := s.db.ExecContext(ctx, query, eventType, resourceType, resourceID, payload); err != nil {
		s.logger.WithError(err).Warn("audit write failed", map[string]interface{}{
			"eventType":  eventType,
			"resourceId": resourceID,
		})
	}
}
