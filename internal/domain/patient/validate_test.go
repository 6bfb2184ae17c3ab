package patient

import (
	"strings"
	"testing"
)

func validSnapshot() *Snapshot {
	return &Snapshot{
		Name:   "Jane Roe",
		Age:    52,
		Gender: GenderFemale,
		Vitals: Vitals{
			BPSystolic:  128,
			BPDiastolic: 82,
			HeartRate:   88,
			Temperature: 37.1,
			SpO2:        97,
		},
		Symptoms:          []string{"headache"},
		Conditions:        []string{"hypertension"},
		InsuranceProvider: "Aetna",
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validSnapshot().Validate(); err != nil {
		t.Fatalf("expected valid snapshot, got %v", err)
	}
}

func TestValidate_Bounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Snapshot)
		want   string
	}{
		{"age negative", func(s *Snapshot) { s.Age = -1 }, "age"},
		{"age too high", func(s *Snapshot) { s.Age = 121 }, "age"},
		{"systolic too high", func(s *Snapshot) { s.BPSystolic = 301 }, "bp_systolic"},
		{"diastolic too high", func(s *Snapshot) { s.BPDiastolic = 201 }, "bp_diastolic"},
		{"heart rate too high", func(s *Snapshot) { s.HeartRate = 251 }, "heart_rate"},
		{"temperature too low", func(s *Snapshot) { s.Temperature = 29.9 }, "temperature"},
		{"spo2 too low", func(s *Snapshot) { s.SpO2 = 49 }, "spo2"},
		{"negative insurance hours", func(s *Snapshot) { s.InsuranceResponseHours = -1 }, "insurance_response_hours"},
		{"bad gender", func(s *Snapshot) { s.Gender = "Unknown" }, "gender"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := validSnapshot()
			tc.mutate(s)
			err := s.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	s := &Snapshot{}
	s.ApplyDefaults()

	if s.Name != "Unknown" {
		t.Errorf("Name = %q, want Unknown", s.Name)
	}
	if s.Symptoms == nil {
		t.Error("Symptoms should default to an empty slice")
	}
	if len(s.Conditions) != 1 || s.Conditions[0] != "none" {
		t.Errorf("Conditions = %v, want [none]", s.Conditions)
	}
	if s.InsuranceProvider != "Self-Pay" {
		t.Errorf("InsuranceProvider = %q, want Self-Pay", s.InsuranceProvider)
	}
}

func TestConditionSet_ExcludesNone(t *testing.T) {
	s := &Snapshot{Conditions: []string{"none", "diabetes", ""}}
	set := s.ConditionSet()
	if len(set) != 1 || !set["diabetes"] {
		t.Errorf("ConditionSet = %v, want only diabetes", set)
	}
}
