package model

// Cost tier boundaries and the estimated price of one avoided re-score
const (
	CheapCostLimit      = 0.01
	SavingsPerCachedHit = 0.02
)

// CostSummary aggregates AI spend over a set of trends
type CostSummary struct {
	TotalCost      float64
	ScoringCost    float64
	AnalysisCost   float64
	Scored         int
	Analyzed       int
	Cached         int
	HighValue      int
	AvgCostPerItem float64
	CacheHitRate   float64
	EstSavings     float64

	FreeTier      int
	CheapTier     int
	ExpensiveTier int
}

// SummarizeCosts computes the cost dashboard figures for the given trends
func SummarizeCosts(trends []Trend) CostSummary {
	var s CostSummary
	for _, t := range trends {
		s.TotalCost += t.TotalAPICost
		s.ScoringCost += t.ScoringCost
		s.AnalysisCost += t.AnalysisCost
		if t.AnalysisCost > 0 {
			s.Analyzed++
		}
		if t.IsCached() {
			s.Cached++
		}
		if t.ScoringCost > 0 || t.Score != nil {
			s.Scored++
		}
		if t.IsHighValue() {
			s.HighValue++
		}
		switch {
		case t.TotalAPICost == 0:
			s.FreeTier++
		case t.TotalAPICost < CheapCostLimit:
			s.CheapTier++
		default:
			s.ExpensiveTier++
		}
	}
	if s.Scored > 0 {
		s.AvgCostPerItem = s.TotalCost / float64(s.Scored)
	}
	if len(trends) > 0 {
		s.CacheHitRate = float64(s.Cached) / float64(len(trends)) * 100
	}
	s.EstSavings = float64(s.Cached) * SavingsPerCachedHit
	return s
}
