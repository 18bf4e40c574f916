package view

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/novraux/novraux-desk/internal/api"
	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/scrape"
)

// TrendFeed is the state of the Viral Trends page
type TrendFeed struct {
	backend TrendBackend
	tracker *scrape.Tracker
	limit   int
	trends  *Resource[[]model.Trend]

	mu       sync.Mutex
	filter   model.TrendFilter
	expanded map[int]bool
	onChange func()
}

// NewTrendFeed creates the trend feed. A finished scrape refreshes the list.
func NewTrendFeed(backend TrendBackend, source scrape.Source, limit int, resetDelay time.Duration) *TrendFeed {
	f := &TrendFeed{
		backend:  backend,
		tracker:  scrape.NewTracker(source, resetDelay),
		limit:    limit,
		trends:   NewResource[[]model.Trend](),
		filter:   model.TrendFilter{Score: model.ScoreAll, Source: "all"},
		expanded: make(map[int]bool),
	}
	f.trends.SetChangeCallback(func(Snapshot[[]model.Trend]) { f.changed() })
	f.tracker.SetCompleteCallback(func() {
		if err := f.Refresh(context.Background()); err != nil && !IsStale(err) {
			log.Printf("Trend refresh after scrape failed: %v", err)
		}
	})
	return f
}

// SetChangeCallback sets the callback run when the list or filters change
func (f *TrendFeed) SetChangeCallback(callback func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = callback
}

func (f *TrendFeed) changed() {
	f.mu.Lock()
	onChange := f.onChange
	f.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Tracker returns the scrape tracker owned by the page
func (f *TrendFeed) Tracker() *scrape.Tracker {
	return f.tracker
}

// Scrape starts a scrape; false means one is already running
func (f *TrendFeed) Scrape() bool {
	return f.tracker.Trigger()
}

// Refresh reloads the trends using the backend-side filters
func (f *TrendFeed) Refresh(ctx context.Context) error {
	return f.trends.Load(ctx, func(ctx context.Context) ([]model.Trend, error) {
		return f.backend.GetTrends(ctx, api.NewTrendParams(f.Filter(), f.limit))
	})
}

// Filter returns the current filter selection
func (f *TrendFeed) Filter() model.TrendFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

// SetFilter replaces the filter selection. It reports whether a
// backend-side field changed and the list must be refetched with Refresh.
func (f *TrendFeed) SetFilter(filter model.TrendFilter) bool {
	return f.UpdateFilter(func(current *model.TrendFilter) { *current = filter })
}

// UpdateFilter applies change to the current selection under the lock, so
// consecutive changes never overwrite each other. It reports whether the
// list must be refetched with Refresh.
func (f *TrendFeed) UpdateFilter(change func(*model.TrendFilter)) bool {
	f.mu.Lock()
	next := f.filter
	change(&next)
	refetch := next.ServerFields() != f.filter.ServerFields()
	f.filter = next
	f.mu.Unlock()

	f.changed()
	return refetch
}

// Snapshot returns the loaded list with its flags
func (f *TrendFeed) Snapshot() Snapshot[[]model.Trend] {
	return f.trends.Snapshot()
}

// Visible returns the loaded trends passing the client-side filters
func (f *TrendFeed) Visible() []model.Trend {
	return f.Filter().Apply(f.trends.Snapshot().Data)
}

// HighValueCount counts high-scoring trends among the loaded ones
func (f *TrendFeed) HighValueCount() int {
	return model.CountHighValue(f.trends.Snapshot().Data)
}

// Costs summarizes the API spend of the loaded trends
func (f *TrendFeed) Costs() model.CostSummary {
	return model.SummarizeCosts(f.trends.Snapshot().Data)
}

// ToggleExpanded flips the deep-analysis panel of a trend
func (f *TrendFeed) ToggleExpanded(id int) bool {
	f.mu.Lock()
	f.expanded[id] = !f.expanded[id]
	open := f.expanded[id]
	f.mu.Unlock()
	f.changed()
	return open
}

// Expanded reports whether the deep-analysis panel of a trend is open
func (f *TrendFeed) Expanded(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.expanded[id]
}

// Explore hands keyword to the niche explorer
func (f *TrendFeed) Explore(nav *Navigator, keyword string) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return
	}
	nav.NavigateWithSeed(PageExplorer, keyword)
}

// Close releases the scrape stream
func (f *TrendFeed) Close() {
	f.tracker.Close()
}
