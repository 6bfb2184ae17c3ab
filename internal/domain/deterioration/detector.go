package deterioration

import (
	"fmt"
	"strings"

	"github.com/vigil/vigil/internal/domain/patient"
)

// The three detectors are independent pattern matchers over the same
// snapshot. Each returns nil when the accumulated signal is below its
// suppression threshold.

var perfusionWarningSigns = []string{"cold_sweats", "pale_skin", "confusion", "dizziness"}

var neuroSymptoms = []string{
	"headache", "numbness", "vision_changes", "confusion",
	"speech_difficulty", "dizziness", "muscle_weakness",
}

var strokeRiskConditions = []string{"stroke_history", "hypertension", "heart_disease"}

var infectionMarkers = []string{"fever", "cough", "diarrhea", "vomiting", "abdominal_pain", "rash"}

var immunoRiskConditions = []string{"diabetes", "cancer", "chronic_kidney_disease"}

// Detect runs all three pattern detectors and aggregates the result.
func Detect(s *patient.Snapshot) Assessment {
	var alerts []Alert
	for _, check := range []func(*patient.Snapshot) *Alert{checkPreShock, checkPreStroke, checkPreSepsis} {
		if a := check(s); a != nil {
			alerts = append(alerts, *a)
		}
	}

	assessment := Assessment{AlertCount: len(alerts), Alerts: alerts}
	for _, a := range alerts {
		if a.Score > assessment.Score {
			assessment.Score = a.Score
		}
		if a.Severity == SeverityCritical {
			assessment.HasCriticalAlert = true
		}
	}
	return assessment
}

// checkPreShock scores falling BP, rising HR, and perfusion warning signs.
// Shock index > 0.9 is concerning, > 1.0 is bad, > 1.4 is often fatal
// untreated.
func checkPreShock(s *patient.Snapshot) *Alert {
	shockIdx := s.ShockIndex()
	symptoms := s.SymptomSet()

	var triggers []string
	score := 0

	if shockIdx > 0.9 {
		triggers = append(triggers, fmt.Sprintf("Elevated shock index (%.2f)", shockIdx))
		score += 25
	}
	if s.BPSystolic < 90 {
		triggers = append(triggers, fmt.Sprintf("Hypotension (SBP %g)", s.BPSystolic))
		score += 25
	}
	if s.HeartRate > 110 {
		triggers = append(triggers, fmt.Sprintf("Tachycardia (HR %g)", s.HeartRate))
		score += 15
	}
	if matched := intersect(symptoms, perfusionWarningSigns); len(matched) > 0 {
		triggers = append(triggers, "Perfusion warning signs: "+strings.Join(matched, ", "))
		score += 10 * len(matched)
	}
	if s.SpO2 < 92 {
		triggers = append(triggers, fmt.Sprintf("Low oxygen (SpO2 %g%%)", s.SpO2))
		score += 15
	}

	if score < 20 {
		return nil
	}
	score = clampScore(score)
	severity := severityFor(score)

	recommendation := "Close monitoring — recheck vitals in 10 minutes"
	if severity == SeverityCritical {
		recommendation = "Initiate IV fluids, continuous monitoring, prepare vasopressors"
	}
	return &Alert{
		Type:           PatternPreShock,
		Severity:       severity,
		Score:          score,
		Triggers:       triggers,
		Recommendation: recommendation,
	}
}

// checkPreStroke scores sudden neurological symptoms against extreme
// hypertension, age, and cerebrovascular history.
func checkPreStroke(s *patient.Snapshot) *Alert {
	symptoms := s.SymptomSet()
	conditions := s.ConditionSet()

	var triggers []string
	score := 0

	if matched := intersect(symptoms, neuroSymptoms); len(matched) >= 2 {
		triggers = append(triggers, "Multiple neuro symptoms: "+strings.Join(matched, ", "))
		score += 15 * len(matched)
	}
	if s.BPSystolic > 180 {
		triggers = append(triggers, fmt.Sprintf("Severe hypertension (SBP %g)", s.BPSystolic))
		score += 25
	}
	if s.Age > 55 {
		triggers = append(triggers, fmt.Sprintf("Age risk factor (%d)", s.Age))
		score += 10
	}
	if matched := intersect(conditions, strokeRiskConditions); len(matched) > 0 {
		triggers = append(triggers, "Risk conditions: "+strings.Join(matched, ", "))
		score += 10 * len(matched)
	}

	if score < 25 {
		return nil
	}
	score = clampScore(score)
	severity := severityFor(score)

	recommendation := "Neurological assessment recommended within 30 minutes"
	if severity == SeverityCritical {
		recommendation = "FAST protocol — activate stroke team, prepare CT/MRI"
	}
	return &Alert{
		Type:           PatternPreStroke,
		Severity:       severity,
		Score:          score,
		Triggers:       triggers,
		Recommendation: recommendation,
	}
}

// checkPreSepsis applies simplified qSOFA + SIRS criteria: temperature
// derangement, tachycardia, hypotension, altered mental status, infection
// markers, and immunocompromising history.
func checkPreSepsis(s *patient.Snapshot) *Alert {
	symptoms := s.SymptomSet()
	conditions := s.ConditionSet()

	var triggers []string
	score := 0

	if s.Temperature > 38.3 {
		triggers = append(triggers, fmt.Sprintf("Fever (%g°C)", s.Temperature))
		score += 20
	} else if s.Temperature < 36.0 {
		triggers = append(triggers, fmt.Sprintf("Hypothermia (%g°C) — possible late sepsis", s.Temperature))
		score += 25
	}
	if s.HeartRate > 90 {
		triggers = append(triggers, fmt.Sprintf("Tachycardia (HR %g)", s.HeartRate))
		score += 15
	}
	if s.BPSystolic < 100 {
		triggers = append(triggers, fmt.Sprintf("Hypotension (SBP %g)", s.BPSystolic))
		score += 20
	}
	if symptoms["confusion"] {
		triggers = append(triggers, "Altered mental status")
		score += 20
	}
	if matched := intersect(symptoms, infectionMarkers); len(matched) > 0 {
		triggers = append(triggers, "Infection markers: "+strings.Join(matched, ", "))
		score += 10
	}
	if matched := intersect(conditions, immunoRiskConditions); len(matched) > 0 {
		triggers = append(triggers, "Immunocompromised risk: "+strings.Join(matched, ", "))
		score += 15
	}

	if score < 25 {
		return nil
	}
	score = clampScore(score)
	severity := severityFor(score)

	recommendation := "Monitor for sepsis progression — repeat vitals in 15 minutes"
	if severity == SeverityCritical {
		recommendation = "Blood cultures STAT, broad-spectrum antibiotics, fluid resuscitation"
	}
	return &Alert{
		Type:           PatternPreSepsis,
		Severity:       severity,
		Score:          score,
		Triggers:       triggers,
		Recommendation: recommendation,
	}
}

// intersect returns the members present in set, in the candidates'
// declaration order so trigger text is deterministic.
func intersect(set map[string]bool, candidates []string) []string {
	var matched []string
	for _, c := range candidates {
		if set[c] {
			matched = append(matched, c)
		}
	}
	return matched
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	return score
}
