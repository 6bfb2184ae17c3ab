package triage

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vigil/vigil/internal/domain/capacity"
	"github.com/vigil/vigil/internal/domain/department"
	"github.com/vigil/vigil/internal/domain/deterioration"
	"github.com/vigil/vigil/internal/domain/insurance"
	"github.com/vigil/vigil/internal/domain/patient"
	"github.com/vigil/vigil/internal/domain/twin"
)

// Attribution is one human-readable model explanation factor. Value is the
// rounded feature value, except on critical overrides where it carries the
// override reason text.
type Attribution struct {
	Feature   string      `json:"feature"`
	Impact    float64     `json:"impact"`
	Value     interface{} `json:"value"`
	Direction string      `json:"direction"`
}

// Classification is the risk call for one patient, either from the
// classifier or forced by the critical override gate.
type Classification struct {
	RiskLevel      patient.RiskLevel             `json:"risk_level"`
	Confidence     float64                       `json:"confidence"`
	Probabilities  map[patient.RiskLevel]float64 `json:"probabilities"`
	Override       bool                          `json:"override"`
	OverrideReason *string                       `json:"override_reason"`
	Attributions   []Attribution                 `json:"shap_factors"`
}

// Decision is the full pipeline output for one triaged patient, persisted
// as the unit of record.
type Decision struct {
	ID             uuid.UUID                     `json:"id"`
	PatientID      string                        `json:"patient_id"`
	PatientName    string                        `json:"patient_name"`
	CreatedAt      time.Time                     `json:"timestamp"`
	RiskLevel      patient.RiskLevel             `json:"risk_level"`
	Confidence     float64                       `json:"confidence"`
	Probabilities  map[patient.RiskLevel]float64 `json:"probabilities"`
	Override       bool                          `json:"override"`
	OverrideReason *string                       `json:"override_reason"`
	Attributions   []Attribution                 `json:"shap_factors"`
	Department     department.Recommendation     `json:"department"`
	Deterioration  deterioration.Assessment      `json:"deterioration"`
	SymptomIssues  ConsistencyReport             `json:"symptom_issues"`
	Insurance      insurance.Advisory            `json:"insurance_risk"`
	ResourceStatus capacity.Status               `json:"resource_status"`
	DigitalTwin    twin.Projection               `json:"digital_twin"`
	Input          patient.Snapshot              `json:"input_data"`
}

// Summary is the dashboard row for one decision.
type Summary struct {
	PatientID          string            `json:"patient_id"`
	PatientName        string            `json:"patient_name"`
	RiskLevel          patient.RiskLevel `json:"risk_level"`
	Department         string            `json:"department"`
	Confidence         float64           `json:"confidence"`
	Timestamp          time.Time         `json:"timestamp"`
	DeteriorationScore int               `json:"deterioration_score"`
}

// Stats aggregates the decision history for the dashboard.
type Stats struct {
	TotalPatients          int                       `json:"total_patients"`
	RiskDistribution       map[patient.RiskLevel]int `json:"risk_distribution"`
	DepartmentDistribution map[string]int            `json:"department_distribution"`
	AvgConfidence          float64                   `json:"avg_confidence"`
	CriticalAlerts         int                       `json:"critical_alerts"`
	RecentPatients         []Summary                 `json:"recent_patients"`
	ResourceSummary        capacity.Hospital         `json:"resource_summary"`
}

// NewPatientID mints the external patient identifier.
func NewPatientID() string {
	return "PT-" + strings.ToUpper(uuid.New().String()[:8])
}
