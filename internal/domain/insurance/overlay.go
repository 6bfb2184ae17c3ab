package insurance

import (
	"fmt"
	"math"

	"github.com/vigil/vigil/internal/domain/patient"
	"github.com/vigil/vigil/internal/domain/twin"
)

// insurerProfile models one payer's pre-authorization turnaround.
type insurerProfile struct {
	baseHours float64
	variance  float64
	fastTrack bool
}

var insurerProfiles = map[string]insurerProfile{
	"BlueCross":    {baseHours: 2.0, variance: 0.6, fastTrack: true},
	"Aetna":        {baseHours: 3.0, variance: 0.8, fastTrack: true},
	"UnitedHealth": {baseHours: 2.5, variance: 0.7, fastTrack: true},
	"Cigna":        {baseHours: 3.5, variance: 1.0, fastTrack: false},
	"Medicare":     {baseHours: 1.5, variance: 0.4, fastTrack: true},
	"Medicaid":     {baseHours: 1.0, variance: 0.3, fastTrack: true},
	"HumanaCare":   {baseHours: 4.0, variance: 1.2, fastTrack: false},
	"Self-Pay":     {baseHours: 0.0, variance: 0.0, fastTrack: true},
}

var defaultProfile = insurerProfile{baseHours: 2.5, variance: 0.8, fastTrack: false}

// Higher-acuity cases mean more complex procedures and longer payer review.
var reviewMultiplier = map[patient.RiskLevel]float64{
	patient.RiskHigh:   1.8,
	patient.RiskMedium: 1.2,
	patient.RiskLow:    0.6,
}

// EstimateResponse models the insurer approval window in minutes for a
// patient at the given risk level. Unknown insurers fall back to a
// conservative default with no fast track.
func EstimateResponse(insurer string, risk patient.RiskLevel) ResponseEstimate {
	profile, ok := insurerProfiles[insurer]
	if !ok {
		profile = defaultProfile
	}

	multiplier, ok := reviewMultiplier[risk]
	if !ok {
		multiplier = 1.0
	}

	baseMin := profile.baseHours * 60
	varianceMin := profile.variance * 60
	estimated := baseMin * multiplier

	return ResponseEstimate{
		Insurer:            insurer,
		EstimatedMinutes:   int(math.Round(estimated)),
		RangeLowMinutes:    int(math.Round(math.Max(0, estimated-varianceMin))),
		RangeHighMinutes:   int(math.Round(estimated + varianceMin)),
		FastTrackAvailable: profile.fastTrack,
	}
}

// Assess cross-references the insurer response window with the projected
// timeline and flags cases where the patient is expected to escalate while
// authorization is still pending.
func Assess(insurer string, risk patient.RiskLevel, timeline []twin.Step) Advisory {
	response := EstimateResponse(insurer, risk)
	wait := response.EstimatedMinutes

	riskAtWait := risk
	riskAtWorst := risk
	for _, step := range timeline {
		if step.TimeMinutes <= wait {
			riskAtWait = step.RiskLevel
		}
		riskAtWorst = step.RiskLevel
	}

	escalation := riskAtWait.Exceeds(risk)

	var urgency Urgency
	var advisory string
	switch {
	case insurer == "Self-Pay":
		urgency = UrgencyNone
		advisory = "No insurance delay — patient can proceed to treatment immediately."
	case escalation:
		advisory = fmt.Sprintf(
			"ALERT: Insurance response from %s is estimated at ~%d min. "+
				"Patient risk is projected to escalate from %s to %s during this wait. ",
			insurer, wait, risk, riskAtWait)
		if response.FastTrackAvailable {
			urgency = UrgencyFastTrack
			advisory += "Fast-track authorization is available — RECOMMENDED."
		} else {
			urgency = UrgencyTreatPending
			advisory += "Fast-track is NOT available with this insurer. Consider initiating treatment pending authorization."
		}
	default:
		urgency = UrgencyManageable
		advisory = fmt.Sprintf(
			"Insurance response from %s is estimated at ~%d min. "+
				"Patient risk is projected to remain at %s during this window.",
			insurer, wait, risk)
	}

	return Advisory{
		Response:             response,
		CurrentRisk:          risk,
		RiskAtResponse:       riskAtWait,
		RiskAtWorst:          riskAtWorst,
		EscalationDuringWait: escalation,
		Urgency:              urgency,
		Advisory:             advisory,
	}
}
