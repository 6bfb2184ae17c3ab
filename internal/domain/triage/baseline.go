package triage

import (
	"context"
	"math"

	"github.com/vigil/vigil/internal/domain/patient"
)

// BaselineClassifier is a deterministic weighted scorer used when no
// external model endpoint is configured. It accumulates signed acuity
// contributions per feature and maps the total through a softmax over the
// three risk classes, so its attributions are exact rather than estimated.
type BaselineClassifier struct{}

func NewBaselineClassifier() *BaselineClassifier { return &BaselineClassifier{} }

var symptomAcuity = map[string]float64{
	"sym_chest_pain":          0.80,
	"sym_shortness_of_breath": 0.70,
	"sym_breathlessness":      0.60,
	"sym_confusion":           0.70,
	"sym_speech_difficulty":   0.60,
	"sym_cold_sweats":         0.50,
	"sym_numbness":            0.40,
	"sym_palpitations":        0.40,
	"sym_vision_changes":      0.30,
	"sym_pale_skin":           0.30,
	"sym_vomiting":            0.25,
	"sym_fever":               0.25,
	"sym_abdominal_pain":      0.20,
	"sym_headache":            0.20,
	"sym_dizziness":           0.20,
	"sym_wheezing":            0.20,
	"sym_muscle_weakness":     0.20,
	"sym_arm_pain":            0.15,
	"sym_jaw_pain":            0.15,
	"sym_diarrhea":            0.10,
	"sym_nausea":              0.10,
	"sym_weight_loss":         0.10,
	"sym_fatigue":             0.05,
	"sym_swelling":            0.05,
	"sym_rash":                0.05,
	"sym_back_pain":           0.05,
	"sym_joint_pain":          0.05,
	"sym_sore_throat":         0.05,
	"sym_cough":               0.05,
	"sym_frequent_urination":  0.05,
}

var conditionAcuity = map[string]float64{
	"cond_heart_disease":          0.50,
	"cond_stroke_history":         0.50,
	"cond_copd":                   0.40,
	"cond_chronic_kidney_disease": 0.35,
	"cond_cancer":                 0.30,
	"cond_diabetes":               0.25,
	"cond_hypertension":           0.20,
	"cond_asthma":                 0.15,
	"cond_obesity":                0.10,
	"cond_epilepsy":               0.10,
	"cond_thyroid_disorder":       0.05,
}

func (b *BaselineClassifier) Classify(_ context.Context, fv patient.FeatureVector) (*RawClassification, error) {
	attributions := make([]RawAttribution, 0, len(fv))
	acuity := 0.0

	for _, f := range fv {
		c := contribution(f.Name, f.Value)
		acuity += c
		attributions = append(attributions, RawAttribution{Feature: f.Name, Impact: c, Value: f.Value})
	}

	// Class logits centered so a healthy adult lands firmly in Low.
	logitHigh := acuity - 2.4
	logitMedium := 1.0 - math.Abs(acuity-1.6)*0.9
	logitLow := 1.8 - acuity

	expHigh := math.Exp(logitHigh)
	expMedium := math.Exp(logitMedium)
	expLow := math.Exp(logitLow)
	sum := expHigh + expMedium + expLow

	return &RawClassification{
		Probabilities: map[patient.RiskLevel]float64{
			patient.RiskHigh:   expHigh / sum,
			patient.RiskMedium: expMedium / sum,
			patient.RiskLow:    expLow / sum,
		},
		Attributions: attributions,
	}, nil
}

// contribution is the signed acuity effect of one feature value. Positive
// pushes toward High risk, negative toward Low.
func contribution(name string, v float64) float64 {
	if w, ok := symptomAcuity[name]; ok {
		return w * v
	}
	if w, ok := conditionAcuity[name]; ok {
		return w * v
	}

	switch name {
	case "age":
		if v > 60 {
			return (v - 60) * 0.012
		}
		if v < 5 {
			return (5 - v) * 0.05
		}
		return 0
	case "bp_systolic":
		if v < 100 {
			return (100 - v) * 0.02
		}
		if v > 160 {
			return (v - 160) * 0.015
		}
		return 0
	case "heart_rate":
		if v > 90 {
			return (v - 90) * 0.02
		}
		if v < 55 {
			return (55 - v) * 0.03
		}
		return 0
	case "temperature":
		if v > 37.5 {
			return (v - 37.5) * 0.5
		}
		if v < 35.5 {
			return (35.5 - v) * 0.6
		}
		return 0
	case "spo2":
		if v < 96 {
			return (96 - v) * 0.15
		}
		return 0
	case "shock_index":
		if v > 0.7 {
			return (v - 0.7) * 3.0
		}
		return 0
	case "map_pressure":
		if v < 65 {
			return (65 - v) * 0.03
		}
		return 0
	case "symptom_count":
		return v * 0.05
	case "condition_count":
		return v * 0.05
	default:
		return 0
	}
}
