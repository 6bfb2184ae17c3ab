package patient

// Feature is one named entry of the classifier feature vector.
type Feature struct {
	Name  string
	Value float64
}

// FeatureVector is the fixed, ordered feature row the classifier boundary
// accepts. The order is part of the contract and must stay in sync with
// whatever model is plugged in behind the Classifier interface.
type FeatureVector []Feature

// Get returns the value of the named feature.
func (fv FeatureVector) Get(name string) (float64, bool) {
	for _, f := range fv {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

var genderEncoding = map[Gender]float64{
	GenderMale:   0,
	GenderFemale: 1,
	GenderOther:  2,
}

// BuildFeatureVector derives the classifier input from a snapshot.
// Field order: demographics, raw vitals, derived vitals (pulse pressure,
// mean arterial pressure, shock index), multi-hot symptoms, multi-hot
// conditions, counts, insurance response hours.
func BuildFeatureVector(s *Snapshot) FeatureVector {
	fv := make(FeatureVector, 0, 15+len(SymptomCodes)+len(ConditionCodes))

	genderEnc, ok := genderEncoding[s.Gender]
	if !ok {
		genderEnc = genderEncoding[GenderOther]
	}
	fv = append(fv,
		Feature{"age", float64(s.Age)},
		Feature{"gender_enc", genderEnc},
		Feature{"bp_systolic", s.BPSystolic},
		Feature{"bp_diastolic", s.BPDiastolic},
		Feature{"heart_rate", s.HeartRate},
		Feature{"temperature", s.Temperature},
		Feature{"spo2", s.SpO2},
	)

	pulsePressure := s.BPSystolic - s.BPDiastolic
	fv = append(fv,
		Feature{"pulse_pressure", pulsePressure},
		Feature{"map_pressure", s.BPDiastolic + pulsePressure/3},
		Feature{"shock_index", s.ShockIndex()},
	)

	symptoms := s.SymptomSet()
	symptomCount := 0.0
	for _, code := range SymptomCodes {
		v := 0.0
		if symptoms[code] {
			v = 1
			symptomCount++
		}
		fv = append(fv, Feature{"sym_" + code, v})
	}

	conditions := s.ConditionSet()
	conditionCount := 0.0
	for _, code := range ConditionCodes {
		v := 0.0
		if conditions[code] {
			v = 1
			conditionCount++
		}
		fv = append(fv, Feature{"cond_" + code, v})
	}

	fv = append(fv,
		Feature{"symptom_count", symptomCount},
		Feature{"condition_count", conditionCount},
		Feature{"insurance_response_hours", s.InsuranceResponseHours},
	)
	return fv
}
