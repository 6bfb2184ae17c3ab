package insurance

import "github.com/vigil/vigil/internal/domain/patient"

// Urgency classifies how the projected wait for insurer approval interacts
// with the patient's trajectory.
type Urgency string

const (
	UrgencyNone         Urgency = "none"
	UrgencyFastTrack    Urgency = "fast_track_recommended"
	UrgencyTreatPending Urgency = "treat_pending_approval"
	UrgencyManageable   Urgency = "manageable"
)

// ResponseEstimate is the modeled insurer approval turnaround for one
// patient, in minutes.
type ResponseEstimate struct {
	Insurer            string `json:"insurer"`
	EstimatedMinutes   int    `json:"estimated_minutes"`
	RangeLowMinutes    int    `json:"range_low_minutes"`
	RangeHighMinutes   int    `json:"range_high_minutes"`
	FastTrackAvailable bool   `json:"fast_track_available"`
}

// Advisory overlays the response estimate on the projected risk timeline:
// where the patient is expected to be when approval lands, and what to do
// about the gap.
type Advisory struct {
	Response             ResponseEstimate  `json:"insurance_response"`
	CurrentRisk          patient.RiskLevel `json:"current_risk"`
	RiskAtResponse       patient.RiskLevel `json:"risk_at_insurance_response"`
	RiskAtWorst          patient.RiskLevel `json:"risk_at_worst"`
	EscalationDuringWait bool              `json:"escalation_during_wait"`
	Urgency              Urgency           `json:"urgency"`
	Advisory             string            `json:"advisory"`
}
