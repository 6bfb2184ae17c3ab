package triage

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/vigil/vigil/internal/domain/patient"
)

// RawAttribution is one per-feature contribution straight from a
// classifier, before any display formatting.
type RawAttribution struct {
	Feature string
	Impact  float64
	Value   float64
}

// RawClassification is a classifier's unadapted output: class probabilities
// plus per-feature attributions for the predicted class.
type RawClassification struct {
	Probabilities map[patient.RiskLevel]float64
	Attributions  []RawAttribution
}

// Classifier scores a feature vector into risk class probabilities.
// Implementations may call out to a model server and must respect ctx
// cancellation.
type Classifier interface {
	Classify(ctx context.Context, fv patient.FeatureVector) (*RawClassification, error)
}

// Higher acuity wins argmax ties.
var riskArgmaxOrder = []patient.RiskLevel{patient.RiskHigh, patient.RiskMedium, patient.RiskLow}

// adaptClassification turns a raw classifier result into the API-facing
// classification: argmax risk call, rounded probabilities, and the top
// attributions formatted for display.
func adaptClassification(raw *RawClassification) Classification {
	risk := riskArgmaxOrder[0]
	best := math.Inf(-1)
	for _, level := range riskArgmaxOrder {
		if p := raw.Probabilities[level]; p > best {
			best = p
			risk = level
		}
	}

	probs := make(map[patient.RiskLevel]float64, len(raw.Probabilities))
	for level, p := range raw.Probabilities {
		probs[level] = round4(p)
	}

	return Classification{
		RiskLevel:     risk,
		Confidence:    round4(raw.Probabilities[risk]),
		Probabilities: probs,
		Attributions:  formatAttributions(raw.Attributions),
	}
}

// formatAttributions sorts by absolute impact and renders the top eight as
// readable factors.
func formatAttributions(raw []RawAttribution) []Attribution {
	sorted := make([]RawAttribution, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].Impact) > math.Abs(sorted[j].Impact)
	})
	if len(sorted) > 8 {
		sorted = sorted[:8]
	}

	out := make([]Attribution, 0, len(sorted))
	for _, a := range sorted {
		direction := "down"
		if a.Impact > 0 {
			direction = "up"
		}
		out = append(out, Attribution{
			Feature:   readableFeature(a.Feature),
			Impact:    round4(math.Abs(a.Impact)),
			Value:     round2(a.Value),
			Direction: direction,
		})
	}
	return out
}

// readableFeature converts an encoded feature name into display form, e.g.
// "sym_chest_pain" becomes "Symptom: Chest Pain".
func readableFeature(name string) string {
	name = strings.Replace(name, "sym_", "Symptom: ", 1)
	name = strings.Replace(name, "cond_", "Condition: ", 1)
	name = strings.ReplaceAll(name, "_", " ")
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
