package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
)

// TrendRow renders one trend of the feed with its badges and the
// expandable deep analysis
type TrendRow struct {
	widget.BaseWidget

	trend        model.Trend
	expanded     bool
	localization *Localization

	keywordLabel  *widget.Label
	scoreText     *canvas.Text
	badgesLabel   *widget.Label
	detailLabel   *widget.Label
	analysisLabel *widget.Label

	expandBtn  *widget.Button
	exploreBtn *widget.Button

	onToggle  func(id int)
	onExplore func(keyword string)
}

// NewTrendRow creates an empty row for list templates
func NewTrendRow(localization *Localization) *TrendRow {
	tr := &TrendRow{localization: localization}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TrendRow) SetCallbacks(onToggle func(id int), onExplore func(keyword string)) {
	tr.onToggle = onToggle
	tr.onExplore = onExplore
}

// UpdateTrend shows trend; expanded opens the deep analysis
func (tr *TrendRow) UpdateTrend(trend model.Trend, expanded bool) {
	tr.trend = trend
	tr.expanded = expanded
	tr.updateFromTrend()
	tr.Refresh()
}

func (tr *TrendRow) createUI() {
	tr.keywordLabel = widget.NewLabel("")
	tr.keywordLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.keywordLabel.Truncation = fyne.TextTruncateEllipsis

	tr.scoreText = canvas.NewText("", ScoreNeutral)
	tr.scoreText.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	tr.scoreText.TextSize = 18

	tr.badgesLabel = widget.NewLabel("")
	tr.badgesLabel.Truncation = fyne.TextTruncateEllipsis

	tr.detailLabel = widget.NewLabel("")
	tr.detailLabel.Wrapping = fyne.TextWrapWord
	tr.detailLabel.Importance = widget.LowImportance

	tr.analysisLabel = widget.NewLabel("")
	tr.analysisLabel.Wrapping = fyne.TextWrapWord

	tr.expandBtn = widget.NewButton(IconExpand, func() {
		if tr.onToggle != nil {
			tr.onToggle(tr.trend.ID)
		}
	})
	tr.expandBtn.Importance = widget.LowImportance

	tr.exploreBtn = widget.NewButton(IconExplore+" "+tr.localization.GetText(KeyExplore), func() {
		if tr.onExplore != nil {
			tr.onExplore(tr.trend.Keyword)
		}
	})
}

// trendScoreText formats an optional 0-10 score
func trendScoreText(score *float64) string {
	if score == nil {
		return DashPlaceholder
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}

// trendBadges builds the one-line badge summary of a trend
func trendBadges(t model.Trend) string {
	parts := []string{model.SourceIcon(t.Source) + " " + t.Source}
	if t.CompetitionLevel != "" {
		parts = append(parts, t.CompetitionLevel)
	}
	switch {
	case t.IPSafe == nil:
	case *t.IPSafe:
		parts = append(parts, IconSafe+" IP-safe")
	default:
		parts = append(parts, IconUnsafe+" IP risk")
	}
	if icon := model.MomentumIcon(t.Momentum); icon != "" {
		parts = append(parts, icon+" "+string(t.Momentum))
	}
	if t.Urgency == model.UrgencyUrgent {
		parts = append(parts, IconFire+" urgent")
	}
	if t.EmojiTag != "" {
		parts = append(parts, t.EmojiTag)
	}
	return strings.Join(parts, MiddleDotSeparator)
}

func (tr *TrendRow) updateFromTrend() {
	t := tr.trend

	tr.keywordLabel.SetText(t.Keyword)
	tr.scoreText.Text = trendScoreText(t.Score)
	tr.scoreText.Color = scoreColor(model.BandForScore(t.Score))
	tr.badgesLabel.SetText(trendBadges(t))

	var details []string
	if len(t.ProductSuggestions) > 0 {
		details = append(details, strings.Join(t.ProductSuggestions, ", "))
	}
	if t.AvgInterest != nil {
		details = append(details, fmt.Sprintf("interest %.0f", *t.AvgInterest))
	}
	if t.DaysTrending > 0 {
		details = append(details, fmt.Sprintf("%dd trending", t.DaysTrending))
	}
	if t.ScoreReasoning != "" {
		details = append(details, t.ScoreReasoning)
	}
	tr.detailLabel.SetText(strings.Join(details, MiddleDotSeparator))

	if t.HasAnalysis() {
		tr.expandBtn.Show()
	} else {
		tr.expandBtn.Hide()
	}
	if tr.expanded && t.HasAnalysis() {
		tr.expandBtn.SetText(IconCollapse)
		tr.analysisLabel.SetText(tr.localization.GetText(KeyDeepAnalysis) + ": " + t.DeepAnalysis)
		tr.analysisLabel.Show()
	} else {
		tr.expandBtn.SetText(IconExpand)
		tr.analysisLabel.SetText("")
		tr.analysisLabel.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (tr *TrendRow) CreateRenderer() fyne.WidgetRenderer {
	score := container.NewCenter(tr.scoreText)
	actions := container.NewHBox(tr.expandBtn, tr.exploreBtn)
	header := container.NewBorder(nil, nil, score, actions, tr.keywordLabel)
	content := container.NewVBox(header, tr.badgesLabel, tr.detailLabel, tr.analysisLabel, widget.NewSeparator())
	return &trendRowRenderer{row: tr, layout: content}
}

type trendRowRenderer struct {
	row    *TrendRow
	layout *fyne.Container
}

func (r *trendRowRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

func (r *trendRowRenderer) MinSize() fyne.Size {
	min := r.layout.MinSize()
	return fyne.NewSize(fyne.Max(min.Width, TrendRowMinWidth), fyne.Max(min.Height, TrendRowMinHeight))
}

func (r *trendRowRenderer) Refresh() {
	r.row.scoreText.Refresh()
	r.layout.Refresh()
}

func (r *trendRowRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

func (r *trendRowRenderer) Destroy() {}
