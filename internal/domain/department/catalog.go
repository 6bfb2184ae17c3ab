package department

import "github.com/vigil/vigil/internal/domain/patient"

// profile is one department's weighted symptom/condition associations plus
// its signed risk-level adjustment. Departments are plain records; catalog
// declaration order is the ranking tie-break order.
type profile struct {
	name       string
	symptoms   map[string]float64
	conditions map[string]float64
	riskBonus  map[patient.RiskLevel]float64
}

var catalog = []profile{
	{
		name: "Emergency",
		symptoms: map[string]float64{
			"chest_pain": 3.0, "shortness_of_breath": 2.5, "confusion": 3.0,
			"cold_sweats": 2.5, "pale_skin": 2.0, "speech_difficulty": 2.5,
		},
		conditions: map[string]float64{"heart_disease": 2.0, "stroke_history": 2.0},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: 4.0, patient.RiskMedium: 0.5, patient.RiskLow: -2.0},
	},
	{
		name: "Cardiology",
		symptoms: map[string]float64{
			"chest_pain": 3.0, "palpitations": 3.0, "arm_pain": 2.5,
			"jaw_pain": 2.0, "shortness_of_breath": 2.0, "cold_sweats": 1.5,
			"dizziness": 1.0,
		},
		conditions: map[string]float64{"heart_disease": 3.0, "hypertension": 2.0, "obesity": 1.0},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: 2.0, patient.RiskMedium: 1.0, patient.RiskLow: 0.0},
	},
	{
		name: "Neurology",
		symptoms: map[string]float64{
			"headache": 2.5, "dizziness": 2.0, "vision_changes": 2.5,
			"numbness": 3.0, "confusion": 2.5, "speech_difficulty": 3.0,
			"muscle_weakness": 2.0,
		},
		conditions: map[string]float64{"stroke_history": 3.0, "epilepsy": 2.5, "hypertension": 1.0},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: 2.0, patient.RiskMedium: 0.5, patient.RiskLow: 0.0},
	},
	{
		name: "Pulmonology",
		symptoms: map[string]float64{
			"cough": 2.5, "wheezing": 3.0, "breathlessness": 3.0,
			"shortness_of_breath": 2.5, "fever": 1.0, "chest_pain": 1.0,
		},
		conditions: map[string]float64{"asthma": 3.0, "copd": 3.0},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: 1.5, patient.RiskMedium: 0.5, patient.RiskLow: 0.0},
	},
	{
		name: "Gastroenterology",
		symptoms: map[string]float64{
			"abdominal_pain": 3.0, "nausea": 2.5, "vomiting": 2.5,
			"diarrhea": 2.0, "weight_loss": 1.5, "fatigue": 0.5,
		},
		conditions: map[string]float64{},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: 1.0, patient.RiskMedium: 0.5, patient.RiskLow: 0.0},
	},
	{
		name: "Orthopedics",
		symptoms: map[string]float64{
			"joint_pain": 3.0, "back_pain": 3.0, "swelling": 2.5,
			"muscle_weakness": 2.0,
		},
		conditions: map[string]float64{"obesity": 1.0},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: 0.5, patient.RiskMedium: 0.0, patient.RiskLow: 0.0},
	},
	{
		name: "General Medicine",
		symptoms: map[string]float64{
			"fever": 2.0, "fatigue": 2.0, "sore_throat": 2.5,
			"cough": 1.5, "headache": 1.0, "rash": 1.0,
			"frequent_urination": 2.0, "weight_loss": 1.5,
		},
		conditions: map[string]float64{"diabetes": 2.0, "thyroid_disorder": 2.0},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: -1.0, patient.RiskMedium: 0.0, patient.RiskLow: 1.0},
	},
	{
		name: "Dermatology",
		symptoms: map[string]float64{
			"rash": 3.0, "swelling": 1.5,
		},
		conditions: map[string]float64{},
		riskBonus:  map[patient.RiskLevel]float64{patient.RiskHigh: -1.0, patient.RiskMedium: -0.5, patient.RiskLow: 1.0},
	},
}

// Names returns the department catalog in declaration order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, p := range catalog {
		names[i] = p.name
	}
	return names
}
