// internal/handlers/onboarding/analyze-profile/service.go
package analyzeprofile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"wealthlens-api/internal/common/logger"
	"wealthlens-api/internal/models"
)

// Service persists computed profiles. Callers treat failures as
// non-fatal; the scoring response never depends on these writes.
type Service struct {
	db     *sql.DB
	logger logger.Logger
}

func NewService(db *sql.DB, log logger.Logger) *Service {
	return &Service{db: db, logger: log}
}

// SaveProfile upserts the onboarding snapshot and the user profile, both
// keyed by user id. The first failure aborts the second write.
func (s *Service) SaveProfile(ctx context.Context, snapshot models.OnboardingSnapshot, profile models.UserProfile) error {
	if err := s.upsertSnapshot(ctx, snapshot); err != nil {
		return fmt.Errorf("upsert onboarding snapshot: %w", err)
	}
	if err := s.upsertProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert user profile: %w", err)
	}
	return nil
}

func (s *Service) upsertSnapshot(ctx context.Context, snapshot models.OnboardingSnapshot) error {
	answers, err := json.Marshal(snapshot.RiskAnswers)
	if err != nil {
		return fmt.Errorf("marshal risk answers: %w", err)
	}
	allocation, err := json.Marshal(snapshot.PortfolioSnapshot)
	if err != nil {
		return fmt.Errorf("marshal portfolio snapshot: %w", err)
	}

	query := `
		INSERT INTO onboarding_snapshots
			(user_id, goals, horizon_years, risk_answers, portfolio_snapshot,
			 risk_label, risk_score, confidence, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			goals = EXCLUDED.goals,
			horizon_years = EXCLUDED.horizon_years,
			risk_answers = EXCLUDED.risk_answers,
			portfolio_snapshot = EXCLUDED.portfolio_snapshot,
			risk_label = EXCLUDED.risk_label,
			risk_score = EXCLUDED.risk_score,
			confidence = EXCLUDED.confidence,
			updated_at = NOW()`

	_, err = s.db.ExecContext(ctx, query,
		snapshot.UserID,
		snapshot.Goals,
		snapshot.HorizonYears,
		answers,
		allocation,
		snapshot.RiskLabel,
		snapshot.RiskScore,
		snapshot.Confidence,
	)
	return err
}

func (s *Service) upsertProfile(ctx context.Context, profile models.UserProfile) error {
	query := `
		INSERT INTO user_profiles
			(user_id, risk_label, risk_score, risk_description, confidence, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			risk_label = EXCLUDED.risk_label,
			risk_score = EXCLUDED.risk_score,
			risk_description = EXCLUDED.risk_description,
			confidence = EXCLUDED.confidence,
			updated_at = NOW()`

	_, err := s.db.ExecContext(ctx, query,
		profile.UserID,
		profile.RiskLabel,
		profile.RiskScore,
		profile.RiskDescription,
		profile.Confidence,
	)
	return err
}
