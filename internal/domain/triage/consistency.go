package triage

import (
	"fmt"
	"strings"

	"github.com/vigil/vigil/internal/domain/patient"
)

// Issue severities, in decreasing order of concern.
const (
	SeverityConflict = "conflict"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Issue is one flagged symptom inconsistency, written for triage staff.
type Issue struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// ConsistencyReport is the result of all inconsistency rules for one
// snapshot.
type ConsistencyReport struct {
	HasIssues  bool    `json:"has_issues"`
	IssueCount int     `json:"issue_count"`
	Issues     []Issue `json:"issues"`
}

var subjectiveSymptoms = []string{
	"dizziness", "headache", "nausea", "abdominal_pain", "joint_pain", "back_pain",
}

var adultOnlyConditions = []string{"hypertension", "heart_disease", "copd"}

// CheckConsistency flags contradictory or suspicious symptom combinations
// before the snapshot reaches the classifier. It catches both data quality
// problems and possible exaggeration; none of the rules block the pipeline.
func CheckConsistency(s *patient.Snapshot) ConsistencyReport {
	symptoms := s.SymptomSet()
	conditions := s.ConditionSet()

	var issues []Issue

	if symptoms["fever"] && s.Temperature < 37.3 {
		issues = append(issues, Issue{
			Severity: SeverityConflict,
			Code:     "FEVER_TEMP_MISMATCH",
			Message: fmt.Sprintf(
				"Patient reports fever but measured temperature is %g°C (normal range). Verify thermometer reading.",
				s.Temperature),
		})
	}

	if symptoms["confusion"] && countMatches(symptoms, subjectiveSymptoms) >= 3 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Code:     "CONFUSION_SELF_REPORT",
			Message:  "Patient marked as confused but reporting multiple subjective symptoms. Verify who provided the symptom list.",
		})
	}

	if adult := matches(conditions, adultOnlyConditions); s.Age < 12 && len(adult) > 0 {
		issues = append(issues, Issue{
			Severity: SeverityConflict,
			Code:     "PEDIATRIC_ADULT_CONDITION",
			Message: fmt.Sprintf(
				"Patient is %d years old but has adult conditions: %s. Please verify medical history.",
				s.Age, strings.Join(adult, ", ")),
		})
	}

	if symptoms["palpitations"] && s.HeartRate < 65 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Code:     "PALPITATION_LOW_HR",
			Message: fmt.Sprintf(
				"Patient reports palpitations but HR is %g bpm (normal/low). Intermittent arrhythmia possible — consider ECG.",
				s.HeartRate),
		})
	}

	if symptoms["shortness_of_breath"] && s.SpO2 >= 98 {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Code:     "DYSPNEA_NORMAL_SPO2",
			Message: fmt.Sprintf(
				"Shortness of breath reported but SpO2 is %g%%. Possible anxiety-related dyspnea or early presentation.",
				s.SpO2),
		})
	}

	if symptoms["chest_pain"] && s.BPSystolic < 85 && s.HeartRate < 70 {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Code:     "CHEST_PAIN_BRADYCARDIA",
			Message:  "Chest pain with low BP and no compensatory tachycardia. Consider cardiac tamponade or severe vagal event.",
		})
	}

	if len(symptoms) >= 6 {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Code:     "MANY_SYMPTOMS",
			Message: fmt.Sprintf(
				"Patient reports %d symptoms simultaneously. Consider if anxiety or somatization is a factor.",
				len(symptoms)),
		})
	}

	return ConsistencyReport{
		HasIssues:  len(issues) > 0,
		IssueCount: len(issues),
		Issues:     issues,
	}
}

func matches(set map[string]bool, candidates []string) []string {
	var out []string
	for _, c := range candidates {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

func countMatches(set map[string]bool, candidates []string) int {
	return len(matches(set, candidates))
}
