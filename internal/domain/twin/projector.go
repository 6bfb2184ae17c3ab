package twin

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vigil/vigil/internal/domain/patient"
)

// Physiological clamp bounds for simulated vitals. These are simulation
// safeguards, not input validation.
const (
	minSystolic  = 40
	maxSystolic  = 260
	minDiastolic = 20
	maxDiastolic = 160
	minHeartRate = 25
	maxHeartRate = 220
	minTemp      = 34.0
	maxTemp      = 42.5
	minSpO2      = 60
	maxSpO2      = 100
)

// rateProfile defines per-step uniform delta ranges and the fixed base risk
// growth for one decay curve. The diastolic delta derives from 40% of the
// systolic range and is sampled independently.
type rateProfile struct {
	bpSystolicDelta  [2]float64
	heartRateDelta   [2]float64
	spo2Delta        [2]float64
	temperatureDelta [2]float64
	riskScoreGrowth  float64
}

var rateProfiles = map[Profile]rateProfile{
	ProfileStable: {
		bpSystolicDelta:  [2]float64{-1, 1},
		heartRateDelta:   [2]float64{-1, 1},
		spo2Delta:        [2]float64{-0.1, 0.1},
		temperatureDelta: [2]float64{-0.05, 0.05},
		riskScoreGrowth:  0.005,
	},
	ProfileDeclining: {
		bpSystolicDelta:  [2]float64{-4, 0},
		heartRateDelta:   [2]float64{1, 5},
		spo2Delta:        [2]float64{-0.5, -0.1},
		temperatureDelta: [2]float64{0.0, 0.15},
		riskScoreGrowth:  0.04,
	},
	ProfileCriticalTrajectory: {
		bpSystolicDelta:  [2]float64{-8, -2},
		heartRateDelta:   [2]float64{3, 10},
		spo2Delta:        [2]float64{-1.2, -0.3},
		temperatureDelta: [2]float64{0.1, 0.3},
		riskScoreGrowth:  0.09,
	},
}

var baseRiskScore = map[patient.RiskLevel]float64{
	patient.RiskLow:    0.15,
	patient.RiskMedium: 0.45,
	patient.RiskHigh:   0.75,
}

func chooseProfile(risk patient.RiskLevel, deteriorationScore int) Profile {
	if deteriorationScore >= 60 || risk == patient.RiskHigh {
		return ProfileCriticalTrajectory
	}
	if deteriorationScore >= 30 || risk == patient.RiskMedium {
		return ProfileDeclining
	}
	return ProfileStable
}

// Project simulates the patient's vitals forward over the horizon in fixed
// steps. The random source is injected so runs are reproducible under a
// fixed seed; the projector never touches the global RNG.
func Project(vitals patient.Vitals, risk patient.RiskLevel, deteriorationScore, horizonMinutes, stepMinutes int, rng *rand.Rand) Projection {
	profileName := chooseProfile(risk, deteriorationScore)
	profile := rateProfiles[profileName]

	base, ok := baseRiskScore[risk]
	if !ok {
		base = 0.3
	}

	steps := horizonMinutes / stepMinutes
	timeline := make([]Step, 0, steps+1)
	var escalationPoint *int

	current := vitals
	for i := 0; i <= steps; i++ {
		t := i * stepMinutes
		score := computeRiskScore(current, base)
		level := scoreToRisk(score)

		timeline = append(timeline, Step{
			TimeMinutes: t,
			Vitals:      current,
			RiskScore:   score,
			RiskLevel:   level,
		})

		if escalationPoint == nil && level.Exceeds(risk) {
			offset := t
			escalationPoint = &offset
		}

		if i < steps {
			current = projectStep(current, profile, rng)
			base += profile.riskScoreGrowth
		}
	}

	finalRisk := timeline[len(timeline)-1].RiskLevel
	return Projection{
		Profile:            profileName,
		StartingRisk:       risk,
		ProjectedFinalRisk: finalRisk,
		EscalationPointMin: escalationPoint,
		Timeline:           timeline,
		Summary:            buildSummary(risk, finalRisk, escalationPoint, horizonMinutes),
	}
}

// projectStep advances vitals by one step, sampling each delta uniformly
// from the profile range and clamping to physiological bounds.
func projectStep(v patient.Vitals, p rateProfile, rng *rand.Rand) patient.Vitals {
	next := patient.Vitals{
		BPSystolic:  round1(v.BPSystolic + uniform(rng, p.bpSystolicDelta[0], p.bpSystolicDelta[1])),
		BPDiastolic: round1(v.BPDiastolic + uniform(rng, p.bpSystolicDelta[0]*0.4, p.bpSystolicDelta[1]*0.4)),
		HeartRate:   round1(v.HeartRate + uniform(rng, p.heartRateDelta[0], p.heartRateDelta[1])),
		Temperature: round1(v.Temperature + uniform(rng, p.temperatureDelta[0], p.temperatureDelta[1])),
		SpO2:        round1(v.SpO2 + uniform(rng, p.spo2Delta[0], p.spo2Delta[1])),
	}

	next.BPSystolic = clamp(next.BPSystolic, minSystolic, maxSystolic)
	next.BPDiastolic = clamp(next.BPDiastolic, minDiastolic, maxDiastolic)
	next.HeartRate = clamp(next.HeartRate, minHeartRate, maxHeartRate)
	next.Temperature = clamp(next.Temperature, minTemp, maxTemp)
	next.SpO2 = clamp(next.SpO2, minSpO2, maxSpO2)
	return next
}

// computeRiskScore maps vitals to a continuous 0-1 risk score: the base for
// the current level plus scaled penalties for each out-of-range vital,
// proportional to distance past the threshold.
func computeRiskScore(v patient.Vitals, base float64) float64 {
	penalties := 0.0

	if v.BPSystolic < 90 {
		penalties += (90 - v.BPSystolic) / 50
	} else if v.BPSystolic > 180 {
		penalties += (v.BPSystolic - 180) / 60
	}

	if v.HeartRate > 120 {
		penalties += (v.HeartRate - 120) / 80
	} else if v.HeartRate < 50 {
		penalties += (50 - v.HeartRate) / 30
	}

	if v.SpO2 < 94 {
		penalties += (94 - v.SpO2) / 15
	}

	if v.Temperature > 38.5 {
		penalties += (v.Temperature - 38.5) / 4
	} else if v.Temperature < 35.5 {
		penalties += (35.5 - v.Temperature) / 3
	}

	score := base + penalties*0.15
	return round3(clamp(score, 0, 1))
}

func scoreToRisk(score float64) patient.RiskLevel {
	switch {
	case score >= 0.65:
		return patient.RiskHigh
	case score >= 0.35:
		return patient.RiskMedium
	default:
		return patient.RiskLow
	}
}

func buildSummary(starting, final patient.RiskLevel, escalation *int, horizonMinutes int) string {
	switch {
	case escalation != nil:
		return fmt.Sprintf(
			"Patient risk is projected to escalate from %s to %s — first escalation around %d min",
			starting, final, *escalation)
	case starting == patient.RiskHigh:
		return fmt.Sprintf(
			"Patient is already High risk and condition may continue deteriorating over the next %d min",
			horizonMinutes)
	default:
		return fmt.Sprintf(
			"Patient condition appears stable at %s risk over %d-minute projection",
			starting, horizonMinutes)
	}
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
