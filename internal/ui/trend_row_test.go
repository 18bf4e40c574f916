package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/novraux/novraux-desk/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestTrendScoreText(t *testing.T) {
	if got := trendScoreText(nil); got != DashPlaceholder {
		t.Errorf("trendScoreText(nil) = %s, expected %s", got, DashPlaceholder)
	}
	if got := trendScoreText(ptr(8.25)); got != "8.2" && got != "8.3" {
		t.Errorf("trendScoreText(8.25) = %s, expected one decimal", got)
	}
}

func TestTrendBadges(t *testing.T) {
	tests := []struct {
		name     string
		trend    model.Trend
		contains []string
		excludes []string
	}{
		{
			name:     "safe rising urgent",
			trend:    model.Trend{Source: "tiktok", CompetitionLevel: "low", IPSafe: ptr(true), Momentum: model.MomentumRising, Urgency: model.UrgencyUrgent},
			contains: []string{"tiktok", "low", "IP-safe", "rising", "urgent"},
		},
		{
			name:     "risky",
			trend:    model.Trend{Source: "etsy", IPSafe: ptr(false)},
			contains: []string{"etsy", "IP risk"},
			excludes: []string{"IP-safe"},
		},
		{
			name:     "unknown safety",
			trend:    model.Trend{Source: "google"},
			excludes: []string{"IP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := trendBadges(tt.trend)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("trendBadges() = %q, expected it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("trendBadges() = %q, expected it not to contain %q", got, unwanted)
				}
			}
		})
	}
}

func TestTrendRowExpand(t *testing.T) {
	test.NewApp()
	defer test.NewApp()

	row := NewTrendRow(NewLocalization())
	var toggled, explored []string
	row.SetCallbacks(func(id int) {
		toggled = append(toggled, "toggle")
	}, func(keyword string) {
		explored = append(explored, keyword)
	})

	trend := model.Trend{ID: 4, Keyword: "axolotl", Source: "google", Score: ptr(7.5), DeepAnalysis: "Gen Z loves it"}

	row.UpdateTrend(trend, false)
	if row.analysisLabel.Visible() {
		t.Error("Analysis should be hidden when collapsed")
	}
	if !row.expandBtn.Visible() {
		t.Error("Expand button should show for a trend with analysis")
	}

	row.UpdateTrend(trend, true)
	if !row.analysisLabel.Visible() || !strings.Contains(row.analysisLabel.Text, "Gen Z loves it") {
		t.Errorf("Analysis = %q visible=%v, expected the deep analysis", row.analysisLabel.Text, row.analysisLabel.Visible())
	}

	test.Tap(row.expandBtn)
	test.Tap(row.exploreBtn)
	if len(toggled) != 1 {
		t.Errorf("Toggles = %d, expected 1", len(toggled))
	}
	if len(explored) != 1 || explored[0] != "axolotl" {
		t.Errorf("Explored = %v, expected [axolotl]", explored)
	}

	row.UpdateTrend(model.Trend{ID: 5, Keyword: "plain", Source: "etsy"}, true)
	if row.expandBtn.Visible() || row.analysisLabel.Visible() {
		t.Error("A trend without analysis has nothing to expand")
	}
}
