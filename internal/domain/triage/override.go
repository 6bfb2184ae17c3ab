package triage

import (
	"fmt"
	"strings"

	"github.com/vigil/vigil/internal/domain/patient"
)

// Critical override thresholds. Any single breach forces a High risk call
// without consulting the classifier.
const (
	overrideBPHigh   = 200
	overrideBPLow    = 70
	overrideHRHigh   = 150
	overrideHRLow    = 35
	overrideTempHigh = 40.5
	overrideSpO2Low  = 85
)

// EvaluateOverride applies the hard safety rules to raw vitals. It returns
// the joined reason text, or "" when no rule fires.
func EvaluateOverride(v patient.Vitals) string {
	var reasons []string

	if v.BPSystolic >= overrideBPHigh {
		reasons = append(reasons, fmt.Sprintf("Critically high BP (%g)", v.BPSystolic))
	}
	if v.BPSystolic <= overrideBPLow {
		reasons = append(reasons, fmt.Sprintf("Dangerously low BP (%g)", v.BPSystolic))
	}
	if v.HeartRate >= overrideHRHigh {
		reasons = append(reasons, fmt.Sprintf("Extreme tachycardia (HR %g)", v.HeartRate))
	}
	if v.HeartRate <= overrideHRLow {
		reasons = append(reasons, fmt.Sprintf("Severe bradycardia (HR %g)", v.HeartRate))
	}
	if v.Temperature >= overrideTempHigh {
		reasons = append(reasons, fmt.Sprintf("Hyperpyrexia (Temp %g°C)", v.Temperature))
	}
	if v.SpO2 <= overrideSpO2Low {
		reasons = append(reasons, fmt.Sprintf("Severe hypoxia (SpO2 %g%%)", v.SpO2))
	}

	return strings.Join(reasons, "; ")
}

// overrideClassification builds the forced High risk result for a fired
// override.
func overrideClassification(reason string) Classification {
	r := reason
	return Classification{
		RiskLevel:  patient.RiskHigh,
		Confidence: 0.99,
		Probabilities: map[patient.RiskLevel]float64{
			patient.RiskHigh:   0.99,
			patient.RiskMedium: 0.005,
			patient.RiskLow:    0.005,
		},
		Override:       true,
		OverrideReason: &r,
		Attributions: []Attribution{
			{Feature: "CRITICAL_OVERRIDE", Impact: 1.0, Value: reason, Direction: "up"},
		},
	}
}
