package triage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vigil/vigil/internal/domain/capacity"
	"github.com/vigil/vigil/internal/domain/department"
	"github.com/vigil/vigil/internal/domain/deterioration"
	"github.com/vigil/vigil/internal/domain/insurance"
	"github.com/vigil/vigil/internal/domain/patient"
	"github.com/vigil/vigil/internal/domain/twin"
)

var (
	ErrInvalidPatient    = errors.New("invalid patient")
	ErrClassifierTimeout = errors.New("classifier timeout")
)

const (
	twinHorizonMinutes = 180
	twinStepMinutes    = 30
	recentPatientCount = 20
)

// Service runs the full decision pipeline: consistency check, risk
// classification behind the critical override gate, department routing,
// deterioration detection, forward projection, insurance overlay, and
// capacity check.
type Service struct {
	repo       Repository
	classifier Classifier
	resources  *capacity.Store
	timeout    time.Duration
	newRand    func() *rand.Rand
}

func NewService(repo Repository, classifier Classifier, resources *capacity.Store, classifierTimeout time.Duration) *Service {
	return &Service{
		repo:       repo,
		classifier: classifier,
		resources:  resources,
		timeout:    classifierTimeout,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// SetRandFactory replaces the projection RNG source, for reproducible runs.
func (s *Service) SetRandFactory(f func() *rand.Rand) {
	s.newRand = f
}

// Triage runs the pipeline for one patient and persists the decision.
func (s *Service) Triage(ctx context.Context, snap *patient.Snapshot) (*Decision, error) {
	snap.ApplyDefaults()
	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatient, err)
	}

	issues := CheckConsistency(snap)

	classification, err := s.classify(ctx, snap)
	if err != nil {
		return nil, err
	}

	recommendation := department.Recommend(snap.Symptoms, snap.Conditions, classification.RiskLevel)
	assessment := deterioration.Detect(snap)

	projection := twin.Project(snap.Vitals, classification.RiskLevel, assessment.Score,
		twinHorizonMinutes, twinStepMinutes, s.newRand())

	advisory := insurance.Assess(snap.InsuranceProvider, classification.RiskLevel, projection.Timeline)
	status := s.resources.Check(recommendation.Department)

	decision := &Decision{
		ID:             uuid.New(),
		PatientID:      NewPatientID(),
		PatientName:    snap.Name,
		CreatedAt:      time.Now().Truncate(time.Second),
		RiskLevel:      classification.RiskLevel,
		Confidence:     classification.Confidence,
		Probabilities:  classification.Probabilities,
		Override:       classification.Override,
		OverrideReason: classification.OverrideReason,
		Attributions:   classification.Attributions,
		Department:     recommendation,
		Deterioration:  assessment,
		SymptomIssues:  issues,
		Insurance:      advisory,
		ResourceStatus: status,
		DigitalTwin:    projection,
		Input:          *snap,
	}

	if err := s.repo.Create(ctx, decision); err != nil {
		// The decision is still clinically valid; persistence failures
		// must not block triage.
		log.Error().Err(err).Str("patient_id", decision.PatientID).Msg("failed to persist triage decision")
	}
	return decision, nil
}

// classify applies the override gate and, when it does not fire, runs the
// classifier under the configured deadline.
func (s *Service) classify(ctx context.Context, snap *patient.Snapshot) (Classification, error) {
	if reason := EvaluateOverride(snap.Vitals); reason != "" {
		return overrideClassification(reason), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		raw *RawClassification
		err error
	}
	ch := make(chan result, 1)
	go func() {
		raw, err := s.classifier.Classify(ctx, patient.BuildFeatureVector(snap))
		ch <- result{raw, err}
	}()

	select {
	case <-ctx.Done():
		// A cancelled parent context (client disconnect, server shutdown)
		// is not a classifier timeout.
		if errors.Is(ctx.Err(), context.Canceled) {
			return Classification{}, fmt.Errorf("classify: %w", ctx.Err())
		}
		return Classification{}, fmt.Errorf("%w: %v", ErrClassifierTimeout, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return Classification{}, fmt.Errorf("classify: %w", res.err)
		}
		return adaptClassification(res.raw), nil
	}
}

func (s *Service) GetDecision(ctx context.Context, patientID string) (*Decision, error) {
	return s.repo.GetByPatientID(ctx, patientID)
}

func (s *Service) ListDecisions(ctx context.Context, limit, offset int) ([]*Decision, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Stats builds the dashboard rollup from the decision history plus the
// primary hospital census.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	agg, err := s.repo.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.Recent(ctx, recentPatientCount)
	if err != nil {
		return nil, err
	}

	riskDist := map[patient.RiskLevel]int{
		patient.RiskLow:    0,
		patient.RiskMedium: 0,
		patient.RiskHigh:   0,
	}
	for level, count := range agg.RiskCounts {
		riskDist[patient.RiskLevel(level)] = count
	}

	avg := 0.0
	if agg.Total > 0 {
		avg = math.Round(agg.ConfidenceSum/float64(agg.Total)*1000) / 1000
	}

	deptDist := agg.DepartmentCounts
	if deptDist == nil {
		deptDist = map[string]int{}
	}
	if recent == nil {
		recent = []Summary{}
	}

	return &Stats{
		TotalPatients:          agg.Total,
		RiskDistribution:       riskDist,
		DepartmentDistribution: deptDist,
		AvgConfidence:          avg,
		CriticalAlerts:         agg.CriticalAlerts,
		RecentPatients:         recent,
		ResourceSummary:        s.resources.PrimaryHospital(),
	}, nil
}
