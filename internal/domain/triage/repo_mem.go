package triage

import (
	"context"
	"fmt"
	"sync"
)

// memRepo is the in-memory decision store used when no database is
// configured. Decisions are held in arrival order; reads copy slices but
// share decision pointers, so callers must not mutate returned decisions.
type memRepo struct {
	mu        sync.RWMutex
	decisions []*Decision
}

func NewMemRepo() Repository { return &memRepo{} }

func (r *memRepo) Create(_ context.Context, d *Decision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions = append(r.decisions, d)
	return nil
}

func (r *memRepo) GetByPatientID(_ context.Context, patientID string) (*Decision, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.decisions {
		if d.PatientID == patientID {
			return d, nil
		}
	}
	return nil, fmt.Errorf("decision for patient %s not found", patientID)
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Decision, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.decisions)
	items := make([]*Decision, 0, limit)
	for i := total - 1 - offset; i >= 0 && len(items) < limit; i-- {
		items = append(items, r.decisions[i])
	}
	return items, total, nil
}

func (r *memRepo) Recent(_ context.Context, limit int) ([]Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, limit)
	for i := len(r.decisions) - 1; i >= 0 && len(out) < limit; i-- {
		d := r.decisions[i]
		out = append(out, Summary{
			PatientID:          d.PatientID,
			PatientName:        d.PatientName,
			RiskLevel:          d.RiskLevel,
			Department:         d.Department.Department,
			Confidence:         d.Confidence,
			Timestamp:          d.CreatedAt,
			DeteriorationScore: d.Deterioration.Score,
		})
	}
	return out, nil
}

func (r *memRepo) Aggregate(_ context.Context) (*Aggregates, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agg := &Aggregates{
		Total:            len(r.decisions),
		RiskCounts:       map[string]int{},
		DepartmentCounts: map[string]int{},
	}
	for _, d := range r.decisions {
		agg.RiskCounts[string(d.RiskLevel)]++
		agg.DepartmentCounts[d.Department.Department]++
		agg.ConfidenceSum += d.Confidence
		if d.Deterioration.HasCriticalAlert {
			agg.CriticalAlerts++
		}
	}
	return agg, nil
}
