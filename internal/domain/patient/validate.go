package patient

import "fmt"

// Validate rejects out-of-range input before it enters the pipeline.
// Ranges match the intake contract: age 0-120, systolic BP 0-300,
// diastolic BP 0-200, HR 0-250, temperature 30-45, SpO2 50-100.
// Values are never silently clamped here.
func (s *Snapshot) Validate() error {
	if s.Age < 0 || s.Age > 120 {
		return fmt.Errorf("age must be between 0 and 120, got %d", s.Age)
	}
	if s.BPSystolic < 0 || s.BPSystolic > 300 {
		return fmt.Errorf("bp_systolic must be between 0 and 300, got %g", s.BPSystolic)
	}
	if s.BPDiastolic < 0 || s.BPDiastolic > 200 {
		return fmt.Errorf("bp_diastolic must be between 0 and 200, got %g", s.BPDiastolic)
	}
	if s.HeartRate < 0 || s.HeartRate > 250 {
		return fmt.Errorf("heart_rate must be between 0 and 250, got %g", s.HeartRate)
	}
	if s.Temperature < 30 || s.Temperature > 45 {
		return fmt.Errorf("temperature must be between 30 and 45, got %g", s.Temperature)
	}
	if s.SpO2 < 50 || s.SpO2 > 100 {
		return fmt.Errorf("spo2 must be between 50 and 100, got %g", s.SpO2)
	}
	if s.InsuranceResponseHours < 0 {
		return fmt.Errorf("insurance_response_hours must not be negative, got %g", s.InsuranceResponseHours)
	}
	switch s.Gender {
	case GenderMale, GenderFemale, GenderOther:
	default:
		return fmt.Errorf("gender must be Male, Female, or Other, got %q", s.Gender)
	}
	return nil
}

// ApplyDefaults fills optional fields the intake contract allows to be
// omitted.
func (s *Snapshot) ApplyDefaults() {
	if s.Name == "" {
		s.Name = "Unknown"
	}
	if s.Symptoms == nil {
		s.Symptoms = []string{}
	}
	if len(s.Conditions) == 0 {
		s.Conditions = []string{"none"}
	}
	if s.InsuranceProvider == "" {
		s.InsuranceProvider = "Self-Pay"
	}
}
