package triage

import (
	"strings"
	"testing"

	"github.com/vigil/vigil/internal/domain/patient"
)

func TestEvaluateOverride_NoBreach(t *testing.T) {
	v := patient.Vitals{
		BPSystolic: 120, BPDiastolic: 80, HeartRate: 75,
		Temperature: 37.0, SpO2: 97,
	}
	if got := EvaluateOverride(v); got != "" {
		t.Errorf("expected no override, got %q", got)
	}
}

func TestEvaluateOverride_SingleBreaches(t *testing.T) {
	base := patient.Vitals{
		BPSystolic: 120, BPDiastolic: 80, HeartRate: 75,
		Temperature: 37.0, SpO2: 97,
	}
	cases := []struct {
		name   string
		mutate func(*patient.Vitals)
		want   string
	}{
		{"high bp", func(v *patient.Vitals) { v.BPSystolic = 200 }, "Critically high BP (200)"},
		{"low bp", func(v *patient.Vitals) { v.BPSystolic = 70 }, "Dangerously low BP (70)"},
		{"tachycardia", func(v *patient.Vitals) { v.HeartRate = 150 }, "Extreme tachycardia (HR 150)"},
		{"bradycardia", func(v *patient.Vitals) { v.HeartRate = 35 }, "Severe bradycardia (HR 35)"},
		{"hyperpyrexia", func(v *patient.Vitals) { v.Temperature = 40.5 }, "Hyperpyrexia (Temp 40.5°C)"},
		{"hypoxia", func(v *patient.Vitals) { v.SpO2 = 85 }, "Severe hypoxia (SpO2 85%)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := base
			tc.mutate(&v)
			if got := EvaluateOverride(v); got != tc.want {
				t.Errorf("EvaluateOverride = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEvaluateOverride_JustInsideThresholds(t *testing.T) {
	v := patient.Vitals{
		BPSystolic: 199, BPDiastolic: 80, HeartRate: 149,
		Temperature: 40.4, SpO2: 86,
	}
	if got := EvaluateOverride(v); got != "" {
		t.Errorf("values inside the thresholds must not fire, got %q", got)
	}
}

func TestEvaluateOverride_MultipleReasonsJoined(t *testing.T) {
	v := patient.Vitals{
		BPSystolic: 210, BPDiastolic: 110, HeartRate: 160,
		Temperature: 37.0, SpO2: 80,
	}
	got := EvaluateOverride(v)
	want := "Critically high BP (210); Extreme tachycardia (HR 160); Severe hypoxia (SpO2 80%)"
	if got != want {
		t.Errorf("EvaluateOverride = %q, want %q", got, want)
	}
}

func TestOverrideClassification(t *testing.T) {
	c := overrideClassification("Severe hypoxia (SpO2 80%)")

	if c.RiskLevel != patient.RiskHigh || !c.Override {
		t.Fatalf("expected forced High override, got %+v", c)
	}
	if c.Confidence != 0.99 {
		t.Errorf("Confidence = %g, want 0.99", c.Confidence)
	}
	if c.Probabilities[patient.RiskHigh] != 0.99 ||
		c.Probabilities[patient.RiskMedium] != 0.005 ||
		c.Probabilities[patient.RiskLow] != 0.005 {
		t.Errorf("unexpected probabilities: %v", c.Probabilities)
	}
	if c.OverrideReason == nil || !strings.Contains(*c.OverrideReason, "hypoxia") {
		t.Error("override reason missing")
	}
	if len(c.Attributions) != 1 || c.Attributions[0].Feature != "CRITICAL_OVERRIDE" {
		t.Errorf("unexpected attributions: %+v", c.Attributions)
	}
}
