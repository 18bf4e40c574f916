package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/view"
)

// TrendsPage is the Viral Trends page
type TrendsPage struct {
	env  *pageEnv
	feed *view.TrendFeed

	visible []model.Trend

	scrapePanel  *ScrapePanel
	searchEntry  *widget.Entry
	scoreSelect  *widget.Select
	sourceSelect *widget.Select
	safeCheck    *widget.Check
	compSelect   *widget.Select
	momSelect    *widget.Select
	urgSelect    *widget.Select
	intSelect    *widget.Select
	summaryLabel *widget.Label
	costLabel    *widget.Label
	statusLabel  *widget.Label
	emptyLabel   *widget.Label
	list         *widget.List
	content      fyne.CanvasObject
}

func newTrendsPage(env *pageEnv, feed *view.TrendFeed) *TrendsPage {
	p := &TrendsPage{env: env, feed: feed}
	p.createUI()

	feed.SetChangeCallback(onChange(p.render))
	feed.Tracker().SetUpdateCallback(func(job model.ScrapeJob) {
		fyne.Do(func() {
			p.scrapePanel.UpdateJob(job)
		})
	})
	return p
}

// withAll prepends the "all" option
func withAll(options ...string) []string {
	return append([]string{"all"}, options...)
}

func (p *TrendsPage) createUI() {
	p.scrapePanel = NewScrapePanel(p.env.localization)
	p.scrapePanel.SetCallbacks(p.onRunScrape, p.feed.Tracker().Dismiss)

	p.searchEntry = widget.NewEntry()
	p.searchEntry.SetPlaceHolder(p.env.text(KeySearchTrends))
	p.searchEntry.OnChanged = func(s string) {
		p.updateFilter(func(f *model.TrendFilter) { f.Search = s })
	}

	p.scoreSelect = widget.NewSelect([]string{string(model.ScoreAll), string(model.ScoreAtLeast4), string(model.ScoreAtLeast7)}, func(s string) {
		p.updateFilter(func(f *model.TrendFilter) { f.Score = model.ScoreFilter(s) })
	})
	p.sourceSelect = widget.NewSelect(withAll(model.TrendSources...), func(s string) {
		p.updateFilter(func(f *model.TrendFilter) { f.Source = s })
	})
	p.safeCheck = widget.NewCheck(p.env.text(KeySafeOnly), func(b bool) {
		p.updateFilter(func(f *model.TrendFilter) { f.SafeOnly = b })
	})
	p.compSelect = widget.NewSelect(withAll(model.CompetitionLevels...), func(s string) {
		p.updateFilter(func(f *model.TrendFilter) { f.Competition = s })
	})
	p.momSelect = widget.NewSelect(withAll(string(model.MomentumRising), string(model.MomentumStable), string(model.MomentumDeclining)), func(s string) {
		p.updateFilter(func(f *model.TrendFilter) { f.Momentum = model.Momentum(s) })
	})
	p.urgSelect = widget.NewSelect(withAll(string(model.UrgencyUrgent), string(model.UrgencyPlanAhead), string(model.UrgencyEvergreen), string(model.UrgencyStandard)), func(s string) {
		p.updateFilter(func(f *model.TrendFilter) { f.Urgency = model.Urgency(s) })
	})

	var interest []string
	for _, v := range model.InterestMinimums {
		interest = append(interest, strconv.FormatFloat(v, 'f', 0, 64))
	}
	p.intSelect = widget.NewSelect(interest, func(s string) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return
		}
		p.updateFilter(func(f *model.TrendFilter) { f.MinInterest = v })
	})

	p.syncFilterWidgets()

	p.summaryLabel = widget.NewLabel("")
	p.summaryLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.costLabel = widget.NewLabel("")
	p.costLabel.Importance = widget.LowImportance
	p.statusLabel = newStatusLabel()
	p.emptyLabel = widget.NewLabel(p.env.text(KeyNoTrends))
	p.emptyLabel.Alignment = fyne.TextAlignCenter
	p.emptyLabel.Hide()

	p.list = widget.NewList(
		func() int { return len(p.visible) },
		func() fyne.CanvasObject {
			row := NewTrendRow(p.env.localization)
			row.SetCallbacks(func(id int) {
				p.feed.ToggleExpanded(id)
			}, func(keyword string) {
				p.feed.Explore(p.env.nav, keyword)
			})
			return row
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(p.visible) {
				return
			}
			t := p.visible[id]
			item.(*TrendRow).UpdateTrend(t, p.feed.Expanded(t.ID))
			p.list.SetItemHeight(id, item.MinSize().Height)
		},
	)

	refreshBtn := widget.NewButton(IconRefresh+" "+p.env.text(KeyRefresh), func() {
		p.env.background("Trend refresh", p.feed.Refresh)
	})

	filters := container.NewVBox(
		container.NewBorder(nil, nil, nil, refreshBtn, p.searchEntry),
		container.NewGridWithColumns(4,
			labeled(p.env.text(KeyMinScore), p.scoreSelect),
			labeled(p.env.text(KeySource), p.sourceSelect),
			labeled(p.env.text(KeyCompetition), p.compSelect),
			labeled(p.env.text(KeyMomentum), p.momSelect),
		),
		container.NewGridWithColumns(4,
			labeled(p.env.text(KeyUrgency), p.urgSelect),
			labeled(p.env.text(KeyMinInterest), p.intSelect),
			container.NewCenter(p.safeCheck),
		),
	)

	top := container.NewVBox(p.scrapePanel, filters, p.summaryLabel, p.costLabel, p.statusLabel, widget.NewSeparator())
	p.content = container.NewBorder(top, nil, nil, nil, container.NewStack(p.list, p.emptyLabel))
}

// labeled stacks a caption over a control
func labeled(caption string, control fyne.CanvasObject) fyne.CanvasObject {
	l := widget.NewLabel(caption)
	l.Importance = widget.LowImportance
	return container.NewVBox(l, control)
}

// syncFilterWidgets shows the controller's filter without firing handlers
func (p *TrendsPage) syncFilterWidgets() {
	f := p.feed.Filter()
	set := func(s *widget.Select, v string) {
		if v == "" {
			v = "all"
		}
		if s.Selected != v {
			onChanged := s.OnChanged
			s.OnChanged = nil
			s.SetSelected(v)
			s.OnChanged = onChanged
		}
	}
	set(p.scoreSelect, string(f.Score))
	set(p.sourceSelect, f.Source)
	set(p.compSelect, f.Competition)
	set(p.momSelect, string(f.Momentum))
	set(p.urgSelect, string(f.Urgency))
	set(p.intSelect, strconv.FormatFloat(f.MinInterest, 'f', 0, 64))
}

// updateFilter applies a change to the current filter; backend-side
// changes refetch in the background
func (p *TrendsPage) updateFilter(change func(f *model.TrendFilter)) {
	if !p.feed.UpdateFilter(change) {
		return
	}
	p.env.background("Trend filter", p.feed.Refresh)
}

func (p *TrendsPage) onRunScrape() {
	if !p.feed.Scrape() {
		return
	}
	p.env.toaster.Show(p.env.text(KeyScrapeStarted))
}

func (p *TrendsPage) render() {
	snap := p.feed.Snapshot()
	p.visible = p.feed.Visible()

	statusLine(p.statusLabel, snap, p.env.text(KeyLoading))
	p.summaryLabel.SetText(fmt.Sprintf("%d %s%s%d %s",
		len(p.visible), p.env.text(KeyPageTrends), MiddleDotSeparator,
		p.feed.HighValueCount(), p.env.text(KeyHighValue)))

	costs := p.feed.Costs()
	p.costLabel.SetText(fmt.Sprintf("%s: $%.4f%s%s: %.0f%%",
		p.env.text(KeyAPICost), costs.TotalCost, MiddleDotSeparator,
		p.env.text(KeyCacheHitRate), costs.CacheHitRate))

	if snap.Loaded && len(p.visible) == 0 {
		p.emptyLabel.Show()
	} else {
		p.emptyLabel.Hide()
	}
	p.list.Refresh()
}

// Content returns the page body
func (p *TrendsPage) Content() fyne.CanvasObject {
	return p.content
}

// Activate loads the feed on first show
func (p *TrendsPage) Activate() {
	p.scrapePanel.UpdateJob(p.feed.Tracker().Snapshot())
	snap := p.feed.Snapshot()
	if !snap.Loaded && !snap.Loading {
		p.env.background("Trend refresh", p.feed.Refresh)
	}
	p.render()
}
