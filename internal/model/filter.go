package model

import "strings"

// ScoreFilter is the minimum-score selector of the trend feed
type ScoreFilter string

const (
	ScoreAll      ScoreFilter = "all"
	ScoreAtLeast4 ScoreFilter = "4+"
	ScoreAtLeast7 ScoreFilter = "7+"
)

// MinScore returns the minimum score the filter requires
func (s ScoreFilter) MinScore() (float64, bool) {
	switch s {
	case ScoreAtLeast7:
		return 7, true
	case ScoreAtLeast4:
		return 4, true
	default:
		return 0, false
	}
}

// TrendFilter combines the trend feed criteria. Score, Source and SafeOnly
// are also sent to the backend; the rest are evaluated client side only.
// Empty values and "all" mean no constraint.
type TrendFilter struct {
	Score       ScoreFilter
	Source      string
	SafeOnly    bool
	Search      string
	Competition string
	Momentum    Momentum
	Urgency     Urgency
	MinInterest float64
}

// ServerFields returns the part of the filter the backend understands
func (f TrendFilter) ServerFields() TrendFilter {
	return TrendFilter{Score: f.Score, Source: f.Source, SafeOnly: f.SafeOnly}
}

// SourceConstraint returns the source to request, or "" for any
func (f TrendFilter) SourceConstraint() string {
	if f.Source == "all" {
		return ""
	}
	return f.Source
}

// Match reports whether a trend satisfies every active criterion
func (f TrendFilter) Match(t Trend) bool {
	if minScore, ok := f.Score.MinScore(); ok {
		if t.Score == nil || *t.Score < minScore {
			return false
		}
	}
	if src := f.SourceConstraint(); src != "" && !strings.EqualFold(t.Source, src) {
		return false
	}
	if f.SafeOnly && (t.IPSafe == nil || !*t.IPSafe) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(t.Keyword), q) {
			return false
		}
	}
	if f.Competition != "" && f.Competition != "all" && t.CompetitionLevel != f.Competition {
		return false
	}
	if f.Momentum != "" && f.Momentum != "all" && t.Momentum != f.Momentum {
		return false
	}
	if f.Urgency != "" && f.Urgency != "all" && t.Urgency != f.Urgency {
		return false
	}
	// Trends without interest data are never hidden by the threshold.
	if f.MinInterest > 0 && t.AvgInterest != nil && *t.AvgInterest < f.MinInterest {
		return false
	}
	return true
}

// Apply returns the matching trends in their original order. The input
// slice is left untouched.
func (f TrendFilter) Apply(trends []Trend) []Trend {
	out := make([]Trend, 0, len(trends))
	for _, t := range trends {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// CountHighValue counts trends at or above HighScoreThreshold
func CountHighValue(trends []Trend) int {
	n := 0
	for _, t := range trends {
		if t.IsHighValue() {
			n++
		}
	}
	return n
}
