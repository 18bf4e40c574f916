package view

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/novraux/novraux-desk/internal/model"
)

// Calendar is the state of the Seasonal Calendar page
type Calendar struct {
	backend CalendarBackend
	now     func() time.Time
	events  *Resource[[]model.CalendarEvent]

	mu       sync.Mutex
	filter   model.CalendarFilter
	onChange func()
}

// NewCalendar creates the calendar page state. now supplies today's date.
func NewCalendar(backend CalendarBackend, now func() time.Time) *Calendar {
	if now == nil {
		now = time.Now
	}
	c := &Calendar{
		backend: backend,
		now:     now,
		events:  NewResource[[]model.CalendarEvent](),
		filter:  model.CalendarFilter{Category: "All"},
	}
	c.events.SetChangeCallback(func(Snapshot[[]model.CalendarEvent]) { c.changed() })
	return c
}

// SetChangeCallback sets the callback run on any state change
func (c *Calendar) SetChangeCallback(callback func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = callback
}

func (c *Calendar) changed() {
	c.mu.Lock()
	onChange := c.onChange
	c.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Refresh loads the events
func (c *Calendar) Refresh(ctx context.Context) error {
	return c.events.Load(ctx, c.backend.GetCalendar)
}

// Snapshot returns the raw event list state
func (c *Calendar) Snapshot() Snapshot[[]model.CalendarEvent] {
	return c.events.Snapshot()
}

// Resolved returns every loaded event with its next date, soonest first
func (c *Calendar) Resolved() []model.ResolvedEvent {
	resolved, errs := model.ResolveEvents(c.events.Snapshot().Data, c.now())
	for _, err := range errs {
		log.Printf("Skipping calendar event: %v", err)
	}
	return resolved
}

// Filter returns the current filter
func (c *Calendar) Filter() model.CalendarFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// SetCategory narrows the events to one category; "All" shows every one
func (c *Calendar) SetCategory(category string) {
	c.mu.Lock()
	c.filter.Category = category
	c.mu.Unlock()
	c.changed()
}

// SetSearch filters events by name, niche or category text
func (c *Calendar) SetSearch(search string) {
	c.mu.Lock()
	c.filter.Search = search
	c.mu.Unlock()
	c.changed()
}

// Visible returns the resolved events passing the filter
func (c *Calendar) Visible() []model.ResolvedEvent {
	return c.Filter().Apply(c.Resolved())
}

// Months groups the visible events by month
func (c *Calendar) Months() []model.MonthGroup {
	return model.GroupByMonth(c.Visible())
}

// Counts counts all events per urgency bucket, ignoring the filter
func (c *Calendar) Counts() map[model.UrgencyBucket]int {
	return model.CountBuckets(c.Resolved())
}

// Explore hands a suggested niche to the niche explorer
func (c *Calendar) Explore(nav *Navigator, niche string) {
	niche = strings.TrimSpace(niche)
	if niche == "" {
		return
	}
	nav.NavigateWithSeed(PageExplorer, niche)
}

// CopyNiches returns the clipboard text with every niche of event id and
// how many niches it holds.
func (c *Calendar) CopyNiches(id string) (string, int, error) {
	for _, ev := range c.events.Snapshot().Data {
		if ev.ID == id {
			return strings.Join(ev.Niches, ", "), len(ev.Niches), nil
		}
	}
	return "", 0, fmt.Errorf("calendar event %q is not loaded", id)
}
