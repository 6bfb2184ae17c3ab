package triage

import "context"

// Repository stores triage decisions. Implementations must return decisions
// newest first from List.
type Repository interface {
	Create(ctx context.Context, d *Decision) error
	GetByPatientID(ctx context.Context, patientID string) (*Decision, error)
	List(ctx context.Context, limit, offset int) ([]*Decision, int, error)
	Recent(ctx context.Context, limit int) ([]Summary, error)
	Aggregate(ctx context.Context) (*Aggregates, error)
}

// Aggregates are the repository-level rollups behind dashboard stats.
type Aggregates struct {
	Total            int
	RiskCounts       map[string]int
	DepartmentCounts map[string]int
	ConfidenceSum    float64
	CriticalAlerts   int
}
