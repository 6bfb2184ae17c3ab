package patient

// SymptomCodes is the canonical symptom vocabulary, in feature order.
// The classifier feature vector and the meta endpoint both derive from it.
var SymptomCodes = []string{
	"chest_pain", "shortness_of_breath", "palpitations", "arm_pain",
	"jaw_pain", "headache", "dizziness", "vision_changes", "numbness",
	"confusion", "speech_difficulty", "fever", "cough", "wheezing",
	"breathlessness", "sore_throat", "nausea", "vomiting",
	"abdominal_pain", "diarrhea", "fatigue", "joint_pain",
	"back_pain", "swelling", "rash", "cold_sweats", "pale_skin",
	"frequent_urination", "weight_loss", "muscle_weakness",
}

// ConditionCodes is the canonical pre-existing condition vocabulary,
// in feature order.
var ConditionCodes = []string{
	"diabetes", "hypertension", "heart_disease", "asthma", "copd",
	"chronic_kidney_disease", "obesity", "cancer", "stroke_history",
	"thyroid_disorder", "epilepsy",
}
