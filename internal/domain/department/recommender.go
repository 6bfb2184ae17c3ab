package department

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/vigil/vigil/internal/domain/patient"
)

// Score is one department's weighted match against a patient presentation.
// Every non-zero contribution is recorded as a reason string so the ranking
// is auditable.
type Score struct {
	Department   string   `json:"department"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"match_reasons"`
}

// Alternative is a lower-ranked department that still scored positive.
type Alternative struct {
	Department string  `json:"department"`
	Score      float64 `json:"score"`
}

// Recommendation is the top-ranked department plus up to three positive
// alternatives. Confidence is the top score over the sum of all positive
// scores (floored at 1); it is intentionally not clamped, matching the
// degenerate single-department case where the ratio exceeds 1.
type Recommendation struct {
	Department   string        `json:"recommended_department"`
	Confidence   float64       `json:"confidence_score"`
	Reasons      []string      `json:"reasons"`
	Alternatives []Alternative `json:"alternatives"`
}

// Rank scores every department in the catalog and returns them in
// descending score order. Ties keep catalog declaration order.
func Rank(symptoms, conditions []string, risk patient.RiskLevel) []Score {
	scores := make([]Score, 0, len(catalog))

	for _, dept := range catalog {
		var total float64
		var reasons []string

		for _, sym := range symptoms {
			if w := dept.symptoms[sym]; w > 0 {
				total += w
				reasons = append(reasons, fmt.Sprintf("Symptom '%s' (+%g)", humanize(sym), w))
			}
		}
		for _, cond := range conditions {
			if w := dept.conditions[cond]; w > 0 {
				total += w
				reasons = append(reasons, fmt.Sprintf("Condition '%s' (+%g)", humanize(cond), w))
			}
		}
		if bonus := dept.riskBonus[risk]; bonus != 0 {
			total += bonus
			sign := ""
			if bonus > 0 {
				sign = "+"
			}
			reasons = append(reasons, fmt.Sprintf("Risk level '%s' (%s%g)", risk, sign, bonus))
		}

		scores = append(scores, Score{
			Department:   dept.name,
			Score:        round2(total),
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	return scores
}

// Recommend returns the single best department with confidence and
// alternatives.
func Recommend(symptoms, conditions []string, risk patient.RiskLevel) Recommendation {
	ranked := Rank(symptoms, conditions, risk)
	top := ranked[0]

	positiveSum := 0.0
	for _, s := range ranked {
		if s.Score > 0 {
			positiveSum += s.Score
		}
	}
	if positiveSum < 1 {
		positiveSum = 1
	}

	alternatives := make([]Alternative, 0, 3)
	for _, s := range ranked[1:] {
		if len(alternatives) == 3 {
			break
		}
		if s.Score > 0 {
			alternatives = append(alternatives, Alternative{Department: s.Department, Score: s.Score})
		}
	}

	return Recommendation{
		Department:   top.Department,
		Confidence:   round3(top.Score / positiveSum),
		Reasons:      top.MatchReasons,
		Alternatives: alternatives,
	}
}

func humanize(code string) string {
	return strings.ReplaceAll(code, "_", " ")
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
