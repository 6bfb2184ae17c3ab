package insurance

import (
	"strings"
	"testing"

	"github.com/vigil/vigil/internal/domain/patient"
	"github.com/vigil/vigil/internal/domain/twin"
)

// timeline builds projection steps 30 minutes apart from the given levels.
func timeline(levels ...patient.RiskLevel) []twin.Step {
	steps := make([]twin.Step, len(levels))
	for i, lvl := range levels {
		steps[i] = twin.Step{TimeMinutes: i * 30, RiskLevel: lvl}
	}
	return steps
}

func TestEstimateResponse_KnownInsurer(t *testing.T) {
	est := EstimateResponse("BlueCross", patient.RiskHigh)

	// 2.0h base at the 1.8 high-acuity multiplier, ±0.6h variance.
	if est.EstimatedMinutes != 216 {
		t.Errorf("EstimatedMinutes = %d, want 216", est.EstimatedMinutes)
	}
	if est.RangeLowMinutes != 180 || est.RangeHighMinutes != 252 {
		t.Errorf("range = [%d, %d], want [180, 252]", est.RangeLowMinutes, est.RangeHighMinutes)
	}
	if !est.FastTrackAvailable {
		t.Error("BlueCross offers fast track")
	}
}

func TestEstimateResponse_UnknownInsurerUsesDefault(t *testing.T) {
	est := EstimateResponse("Acme Mutual", patient.RiskMedium)

	if est.EstimatedMinutes != 180 {
		t.Errorf("EstimatedMinutes = %d, want 180", est.EstimatedMinutes)
	}
	if est.FastTrackAvailable {
		t.Error("unknown insurers must not be assumed to fast-track")
	}
}

func TestEstimateResponse_SelfPayIsImmediate(t *testing.T) {
	est := EstimateResponse("Self-Pay", patient.RiskHigh)
	if est.EstimatedMinutes != 0 || est.RangeHighMinutes != 0 {
		t.Errorf("Self-Pay estimate = %+v, want zero wait", est)
	}
}

func TestEstimateResponse_RangeLowNeverNegative(t *testing.T) {
	// Medicaid at Low risk: 36 min estimate with 18 min variance stays
	// positive, but the floor must hold for any combination.
	est := EstimateResponse("Medicaid", patient.RiskLow)
	if est.RangeLowMinutes < 0 {
		t.Errorf("RangeLowMinutes = %d, want >= 0", est.RangeLowMinutes)
	}
}

func TestAssess_SelfPay(t *testing.T) {
	adv := Assess("Self-Pay", patient.RiskHigh, timeline(patient.RiskHigh, patient.RiskHigh))

	if adv.Urgency != UrgencyNone {
		t.Errorf("Urgency = %s, want none", adv.Urgency)
	}
	if adv.Advisory != "No insurance delay — patient can proceed to treatment immediately." {
		t.Errorf("unexpected advisory: %q", adv.Advisory)
	}
	if adv.EscalationDuringWait {
		t.Error("Self-Pay never waits, so escalation during wait is impossible")
	}
}

func TestAssess_EscalationWithFastTrack(t *testing.T) {
	// BlueCross at Medium waits ~144 min; the patient turns High at 120.
	steps := timeline(
		patient.RiskMedium, patient.RiskMedium, patient.RiskMedium,
		patient.RiskMedium, patient.RiskHigh, patient.RiskHigh, patient.RiskHigh,
	)
	adv := Assess("BlueCross", patient.RiskMedium, steps)

	if !adv.EscalationDuringWait {
		t.Fatal("expected escalation during the authorization wait")
	}
	if adv.Urgency != UrgencyFastTrack {
		t.Errorf("Urgency = %s, want fast_track_recommended", adv.Urgency)
	}
	if adv.RiskAtResponse != patient.RiskHigh {
		t.Errorf("RiskAtResponse = %s, want High", adv.RiskAtResponse)
	}
	if adv.RiskAtWorst != patient.RiskHigh {
		t.Errorf("RiskAtWorst = %s, want High", adv.RiskAtWorst)
	}
	if !strings.Contains(adv.Advisory, "Fast-track authorization is available — RECOMMENDED.") {
		t.Errorf("unexpected advisory: %q", adv.Advisory)
	}
}

func TestAssess_EscalationWithoutFastTrack(t *testing.T) {
	// Cigna has no fast track; escalation during the wait should push
	// toward treating before authorization clears.
	steps := timeline(
		patient.RiskMedium, patient.RiskMedium, patient.RiskHigh,
		patient.RiskHigh, patient.RiskHigh,
	)
	adv := Assess("Cigna", patient.RiskMedium, steps)

	if adv.Urgency != UrgencyTreatPending {
		t.Errorf("Urgency = %s, want treat_pending_approval", adv.Urgency)
	}
	if !strings.Contains(adv.Advisory, "Consider initiating treatment pending authorization.") {
		t.Errorf("unexpected advisory: %q", adv.Advisory)
	}
}

func TestAssess_ManageableWait(t *testing.T) {
	steps := timeline(patient.RiskLow, patient.RiskLow, patient.RiskLow)
	adv := Assess("Medicaid", patient.RiskLow, steps)

	if adv.Urgency != UrgencyManageable {
		t.Errorf("Urgency = %s, want manageable", adv.Urgency)
	}
	if adv.EscalationDuringWait {
		t.Error("no escalation expected")
	}
	if !strings.Contains(adv.Advisory, "projected to remain at Low during this window.") {
		t.Errorf("unexpected advisory: %q", adv.Advisory)
	}
}
