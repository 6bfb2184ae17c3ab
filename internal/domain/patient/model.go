package patient

// Gender is the self-reported gender used for feature encoding.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// RiskLevel is the triage risk classification. Levels are totally ordered
// Low < Medium < High for escalation comparisons.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

var riskRank = map[RiskLevel]int{RiskLow: 0, RiskMedium: 1, RiskHigh: 2}

// Rank returns the position of the level in the Low<Medium<High order.
// Unknown levels rank lowest.
func (r RiskLevel) Rank() int {
	return riskRank[r]
}

// Exceeds reports whether r is strictly higher than other.
func (r RiskLevel) Exceeds(other RiskLevel) bool {
	return r.Rank() > other.Rank()
}

// Vitals holds a single measurement of the tracked vital signs.
type Vitals struct {
	BPSystolic  float64 `json:"bp_systolic"`
	BPDiastolic float64 `json:"bp_diastolic"`
	HeartRate   float64 `json:"heart_rate"`
	Temperature float64 `json:"temperature"`
	SpO2        float64 `json:"spo2"`
}

// ShockIndex is heart rate over systolic BP, a coarse perfusion indicator.
// Guards against division by zero with a floor of 1 on the systolic value.
func (v Vitals) ShockIndex() float64 {
	sbp := v.BPSystolic
	if sbp < 1 {
		sbp = 1
	}
	return v.HeartRate / sbp
}

// Snapshot is one patient's state for a single triage run. It is treated as
// immutable once constructed.
type Snapshot struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender Gender `json:"gender"`
	Vitals
	Symptoms               []string `json:"symptoms"`
	Conditions             []string `json:"pre_existing_conditions"`
	InsuranceProvider      string   `json:"insurance_provider"`
	InsuranceResponseHours float64  `json:"insurance_response_hours"`
}

// SymptomSet returns the symptoms as a membership set.
func (s *Snapshot) SymptomSet() map[string]bool {
	set := make(map[string]bool, len(s.Symptoms))
	for _, sym := range s.Symptoms {
		set[sym] = true
	}
	return set
}

// ConditionSet returns the pre-existing conditions as a membership set.
// The "none" placeholder is excluded.
func (s *Snapshot) ConditionSet() map[string]bool {
	set := make(map[string]bool, len(s.Conditions))
	for _, cond := range s.Conditions {
		if cond == "none" || cond == "" {
			continue
		}
		set[cond] = true
	}
	return set
}
