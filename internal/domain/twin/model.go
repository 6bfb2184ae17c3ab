package twin

import "github.com/vigil/vigil/internal/domain/patient"

// Profile names the decay curve the projector applies per step.
type Profile string

const (
	ProfileStable             Profile = "stable"
	ProfileDeclining          Profile = "declining"
	ProfileCriticalTrajectory Profile = "critical_trajectory"
)

// Step is one point on the projected timeline.
type Step struct {
	TimeMinutes int               `json:"time_minutes"`
	Vitals      patient.Vitals    `json:"vitals"`
	RiskScore   float64           `json:"risk_score"`
	RiskLevel   patient.RiskLevel `json:"risk_level"`
}

// Projection is the full forward simulation of a patient's trajectory
// absent intervention. EscalationPointMin is the first offset at which the
// discretized risk level strictly exceeds the starting level, nil if it
// never does within the horizon.
type Projection struct {
	Profile            Profile           `json:"profile"`
	StartingRisk       patient.RiskLevel `json:"starting_risk"`
	ProjectedFinalRisk patient.RiskLevel `json:"projected_final_risk"`
	EscalationPointMin *int              `json:"escalation_point_min"`
	Timeline           []Step            `json:"timeline"`
	Summary            string            `json:"summary"`
}
