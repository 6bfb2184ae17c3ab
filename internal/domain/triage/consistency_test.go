package triage

import (
	"strings"
	"testing"

	"github.com/vigil/vigil/internal/domain/patient"
)

func consistentSnapshot() *patient.Snapshot {
	return &patient.Snapshot{
		Age:    40,
		Gender: patient.GenderFemale,
		Vitals: patient.Vitals{
			BPSystolic: 125, BPDiastolic: 82, HeartRate: 80,
			Temperature: 37.0, SpO2: 97,
		},
		Symptoms:   []string{"headache"},
		Conditions: []string{"none"},
	}
}

func issueCodes(r ConsistencyReport) []string {
	codes := make([]string, len(r.Issues))
	for i, iss := range r.Issues {
		codes[i] = iss.Code
	}
	return codes
}

func hasCode(r ConsistencyReport, code string) bool {
	for _, iss := range r.Issues {
		if iss.Code == code {
			return true
		}
	}
	return false
}

func TestCheckConsistency_CleanSnapshot(t *testing.T) {
	r := CheckConsistency(consistentSnapshot())
	if r.HasIssues || r.IssueCount != 0 {
		t.Errorf("expected no issues, got %v", issueCodes(r))
	}
}

func TestCheckConsistency_FeverTempMismatch(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"fever"}
	s.Temperature = 36.8

	r := CheckConsistency(s)
	if !hasCode(r, "FEVER_TEMP_MISMATCH") {
		t.Fatalf("expected FEVER_TEMP_MISMATCH, got %v", issueCodes(r))
	}
	iss := r.Issues[0]
	if iss.Severity != SeverityConflict {
		t.Errorf("Severity = %s, want conflict", iss.Severity)
	}
	if !strings.Contains(iss.Message, "36.8°C") {
		t.Errorf("message should quote the measured temperature: %q", iss.Message)
	}
}

func TestCheckConsistency_ConfusionWithSubjectiveSymptoms(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"confusion", "dizziness", "headache", "nausea"}

	r := CheckConsistency(s)
	if !hasCode(r, "CONFUSION_SELF_REPORT") {
		t.Errorf("expected CONFUSION_SELF_REPORT, got %v", issueCodes(r))
	}

	// Two subjective symptoms are not enough to question the reporter.
	s.Symptoms = []string{"confusion", "dizziness", "headache"}
	if r := CheckConsistency(s); hasCode(r, "CONFUSION_SELF_REPORT") {
		t.Error("rule should require at least three subjective symptoms")
	}
}

func TestCheckConsistency_PediatricAdultCondition(t *testing.T) {
	s := consistentSnapshot()
	s.Age = 8
	s.Conditions = []string{"hypertension", "copd"}

	r := CheckConsistency(s)
	if !hasCode(r, "PEDIATRIC_ADULT_CONDITION") {
		t.Fatalf("expected PEDIATRIC_ADULT_CONDITION, got %v", issueCodes(r))
	}
	if !strings.Contains(r.Issues[0].Message, "hypertension, copd") {
		t.Errorf("message should list the conditions: %q", r.Issues[0].Message)
	}

	s.Age = 12
	if r := CheckConsistency(s); hasCode(r, "PEDIATRIC_ADULT_CONDITION") {
		t.Error("rule applies only below age 12")
	}
}

func TestCheckConsistency_PalpitationsLowHR(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"palpitations"}
	s.HeartRate = 58

	r := CheckConsistency(s)
	if !hasCode(r, "PALPITATION_LOW_HR") {
		t.Errorf("expected PALPITATION_LOW_HR, got %v", issueCodes(r))
	}
	if r.Issues[0].Severity != SeverityWarning {
		t.Errorf("Severity = %s, want warning", r.Issues[0].Severity)
	}
}

func TestCheckConsistency_DyspneaNormalSpO2(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"shortness_of_breath"}
	s.SpO2 = 99

	r := CheckConsistency(s)
	if !hasCode(r, "DYSPNEA_NORMAL_SPO2") {
		t.Errorf("expected DYSPNEA_NORMAL_SPO2, got %v", issueCodes(r))
	}
	if r.Issues[0].Severity != SeverityInfo {
		t.Errorf("Severity = %s, want info", r.Issues[0].Severity)
	}
}

func TestCheckConsistency_ChestPainBradycardia(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"chest_pain"}
	s.BPSystolic = 80
	s.HeartRate = 60

	r := CheckConsistency(s)
	if !hasCode(r, "CHEST_PAIN_BRADYCARDIA") {
		t.Errorf("expected CHEST_PAIN_BRADYCARDIA, got %v", issueCodes(r))
	}
}

func TestCheckConsistency_ManySymptoms(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"fatigue", "rash", "joint_pain", "back_pain", "swelling", "sore_throat"}

	r := CheckConsistency(s)
	if !hasCode(r, "MANY_SYMPTOMS") {
		t.Fatalf("expected MANY_SYMPTOMS, got %v", issueCodes(r))
	}
	if !strings.Contains(r.Issues[0].Message, "6 symptoms") {
		t.Errorf("message should count symptoms: %q", r.Issues[0].Message)
	}
}

func TestCheckConsistency_MultipleIssuesCounted(t *testing.T) {
	s := consistentSnapshot()
	s.Symptoms = []string{"fever", "shortness_of_breath"}
	s.Temperature = 36.5
	s.SpO2 = 99

	r := CheckConsistency(s)
	if r.IssueCount != 2 || !r.HasIssues {
		t.Errorf("IssueCount = %d, want 2 (%v)", r.IssueCount, issueCodes(r))
	}
}
