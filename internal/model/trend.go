package model

import (
	"strings"
)

// Momentum is the direction of a trend's score over time
type Momentum string

const (
	MomentumRising    Momentum = "rising"
	MomentumStable    Momentum = "stable"
	MomentumDeclining Momentum = "declining"
)

// Urgency is the backend's time-sensitivity tag for a trend
type Urgency string

const (
	UrgencyUrgent    Urgency = "urgent"
	UrgencyPlanAhead Urgency = "plan_ahead"
	UrgencyEvergreen Urgency = "evergreen"
	UrgencyStandard  Urgency = "standard"
)

// HighScoreThreshold is the score at which a trend counts as high value
const HighScoreThreshold = 7.0

// Trend is a scored candidate keyword discovered by the backend scraper
type Trend struct {
	ID                 int       `json:"id"`
	Keyword            string    `json:"keyword"`
	Source             string    `json:"source"`
	Score              *float64  `json:"score_groq"`
	PODViability       *float64  `json:"pod_viability"`
	CompetitionLevel   string    `json:"competition_level"`
	IPSafe             *bool     `json:"ip_safe"`
	ProductSuggestions []string  `json:"product_suggestions"`
	ScoreReasoning     string    `json:"score_reasoning"`
	DesignBrief        string    `json:"design_brief"`
	TargetAudience     string    `json:"target_audience"`
	DeepAnalysis       string    `json:"deep_analysis"`
	CreatedAt          Timestamp `json:"created_at"`

	LastScrapedAt  Timestamp `json:"last_scraped_at"`
	ScrapeCount    int       `json:"scrape_count"`
	LastScoredAt   Timestamp `json:"last_scored_at"`
	LastAnalyzedAt Timestamp `json:"last_analyzed_at"`
	DaysTrending   int       `json:"days_trending"`

	Momentum  Momentum  `json:"trend_velocity"`
	PeakScore *float64  `json:"peak_score"`
	PeakDate  Timestamp `json:"peak_date"`

	AvgInterest   *float64 `json:"avg_interest"`
	InterestPeak  *float64 `json:"interest_peak"`
	InterestDelta *float64 `json:"interest_delta"`

	TemporalTags []string `json:"temporal_tags"`
	EmojiTag     string   `json:"emoji_tag"`
	Urgency      Urgency  `json:"urgency"`

	ScoringCost  float64 `json:"scoring_cost"`
	AnalysisCost float64 `json:"analysis_cost"`
	TotalAPICost float64 `json:"total_api_cost"`

	ValidationStatus string `json:"validation_status"`
	Archived         bool   `json:"archived"`
}

// IsHighValue returns true for trends scored at or above HighScoreThreshold
func (t Trend) IsHighValue() bool {
	return t.Score != nil && *t.Score >= HighScoreThreshold
}

// HasAnalysis reports whether a deep analysis was produced for the trend
func (t Trend) HasAnalysis() bool {
	return strings.TrimSpace(t.DeepAnalysis) != ""
}

// IsCached reports whether the last scrape reused the stored score instead
// of paying for a new one.
func (t Trend) IsCached() bool {
	return t.LastScrapedAt.Valid() && t.LastScoredAt.Valid() && t.LastScrapedAt.After(t.LastScoredAt.Time)
}

// SourceIcon returns a short marker for the trend source
func SourceIcon(source string) string {
	switch strings.ToLower(source) {
	case "google":
		return "🔍"
	case "tiktok":
		return "🎵"
	case "pinterest":
		return "📌"
	case "redbubble":
		return "🔴"
	case "etsy":
		return "🧶"
	default:
		return "📊"
	}
}

// MomentumIcon returns an arrow for the momentum direction
func MomentumIcon(m Momentum) string {
	switch m {
	case MomentumRising:
		return "📈"
	case MomentumDeclining:
		return "📉"
	case MomentumStable:
		return "➡️"
	default:
		return ""
	}
}

// ScoreBand classifies a score for color coding
type ScoreBand int

const (
	BandNone ScoreBand = iota
	BandLow
	BandMid
	BandHigh
)

// BandForScore returns the band of a 0-10 score. A nil score has no band.
func BandForScore(score *float64) ScoreBand {
	switch {
	case score == nil:
		return BandNone
	case *score >= HighScoreThreshold:
		return BandHigh
	case *score >= 4:
		return BandMid
	default:
		return BandLow
	}
}

// Sources and competition levels offered by the trend filters
var (
	TrendSources      = []string{"google", "tiktok", "pinterest", "redbubble", "etsy"}
	CompetitionLevels = []string{"low", "medium", "high"}
	InterestMinimums  = []float64{0, 30, 50, 70}
)
