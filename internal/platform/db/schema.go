package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const decisionSchema = `
CREATE TABLE IF NOT EXISTS triage_decision (
	id                  UUID PRIMARY KEY,
	patient_id          TEXT NOT NULL UNIQUE,
	patient_name        TEXT NOT NULL,
	risk_level          TEXT NOT NULL,
	department          TEXT NOT NULL,
	confidence          DOUBLE PRECISION NOT NULL,
	deterioration_score INT NOT NULL,
	has_critical_alert  BOOLEAN NOT NULL,
	payload             JSONB NOT NULL,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_triage_decision_created_at ON triage_decision (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_triage_decision_risk_level ON triage_decision (risk_level);
CREATE INDEX IF NOT EXISTS idx_triage_decision_department ON triage_decision (department);
`

// EnsureSchema creates the decision store tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, decisionSchema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
