package deterioration

// PatternType identifies which detector produced an alert.
type PatternType string

const (
	PatternPreShock  PatternType = "pre_shock"
	PatternPreStroke PatternType = "pre_stroke"
	PatternPreSepsis PatternType = "pre_sepsis"
)

// Severity buckets an alert score. Boundaries are inclusive-low at 40
// (warning) and 65 (critical).
type Severity string

const (
	SeverityWatch    Severity = "watch"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is one fired deterioration pattern.
type Alert struct {
	Type           PatternType `json:"type"`
	Severity       Severity    `json:"severity"`
	Score          int         `json:"score"`
	Triggers       []string    `json:"triggers"`
	Recommendation string      `json:"recommendation"`
}

// Assessment aggregates the detectors for one snapshot: the max alert score,
// whether any alert is critical, and the alerts themselves.
type Assessment struct {
	Score            int     `json:"deterioration_score"`
	HasCriticalAlert bool    `json:"has_critical_alert"`
	AlertCount       int     `json:"alert_count"`
	Alerts           []Alert `json:"alerts"`
}

func severityFor(score int) Severity {
	switch {
	case score >= 65:
		return SeverityCritical
	case score >= 40:
		return SeverityWarning
	default:
		return SeverityWatch
	}
}
