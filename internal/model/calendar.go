package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CalendarEvent is a recurring or one-off selling moment
type CalendarEvent struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	Date     string   `json:"date"`
	Category string   `json:"category"`
	Niches   []string `json:"niches"`
	LeadDays int      `json:"leadDays"`
	Color    string   `json:"color"`
	Notes    string   `json:"notes,omitempty"`
}

// CalendarCategories lists the category filter options
var CalendarCategories = []string{"All", "Holiday", "Awareness", "Sports", "Lifestyle", "Seasonal"}

// NextOccurrence resolves the event date relative to now. "MM-DD" dates
// recur yearly and roll to next year once passed. "YYYY-MM-DD" dates are
// fixed; ok is false when such a date is already in the past.
func (e CalendarEvent) NextOccurrence(now time.Time) (date time.Time, ok bool, err error) {
	today := startOfDay(now)
	parts := strings.Split(e.Date, "-")
	switch len(parts) {
	case 2:
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		if errM != nil || errD != nil || month < 1 || month > 12 || day < 1 || day > 31 {
			return time.Time{}, false, fmt.Errorf("event %s: invalid date %q", e.ID, e.Date)
		}
		candidate := time.Date(today.Year(), time.Month(month), day, 0, 0, 0, 0, today.Location())
		if candidate.Before(today) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, true, nil
	case 3:
		parsed, err := time.ParseInLocation("2006-01-02", e.Date, today.Location())
		if err != nil {
			return time.Time{}, false, fmt.Errorf("event %s: invalid date %q: %w", e.ID, e.Date, err)
		}
		return parsed, !parsed.Before(today), nil
	default:
		return time.Time{}, false, fmt.Errorf("event %s: invalid date %q", e.ID, e.Date)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysUntil counts whole calendar days from now's day to date's day
func DaysUntil(date, now time.Time) int {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := date.Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// UrgencyBucket groups events by how soon they occur
type UrgencyBucket int

const (
	BucketNow UrgencyBucket = iota
	BucketSoon
	BucketPlan
	BucketAhead
)

// UrgencyBuckets lists buckets from most to least urgent
var UrgencyBuckets = []UrgencyBucket{BucketNow, BucketSoon, BucketPlan, BucketAhead}

// BucketFor returns the bucket of an event days away
func BucketFor(days int) UrgencyBucket {
	switch {
	case days <= 14:
		return BucketNow
	case days <= 30:
		return BucketSoon
	case days <= 60:
		return BucketPlan
	default:
		return BucketAhead
	}
}

// Label returns the range the bucket covers
func (b UrgencyBucket) Label() string {
	switch b {
	case BucketNow:
		return "≤14 days"
	case BucketSoon:
		return "15–30 days"
	case BucketPlan:
		return "31–60 days"
	default:
		return "60+ days"
	}
}

// Icon returns the marker shown in the urgency strip
func (b UrgencyBucket) Icon() string {
	switch b {
	case BucketNow:
		return "🔥"
	case BucketSoon:
		return "⚡"
	case BucketPlan:
		return "📅"
	default:
		return "🌱"
	}
}

// ResolvedEvent is an event with its next date computed
type ResolvedEvent struct {
	CalendarEvent
	On   time.Time
	Days int
}

// Bucket returns the urgency bucket of the event
func (r ResolvedEvent) Bucket() UrgencyBucket {
	return BucketFor(r.Days)
}

// DaysLabel renders the countdown, e.g. "Today!", "Tomorrow" or "12d"
func (r ResolvedEvent) DaysLabel() string {
	switch r.Days {
	case 0:
		return "Today!"
	case 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("%dd", r.Days)
	}
}

// StartNow reports whether the design lead time has been reached
func (r ResolvedEvent) StartNow() bool {
	return r.Days <= r.LeadDays
}

// NichesText joins the suggested niches for the clipboard
func (r ResolvedEvent) NichesText() string {
	return strings.Join(r.Niches, ", ")
}

// ResolveEvents computes next dates and sorts soonest first. Events with an
// invalid or past fixed date are left out; their errors are returned.
func ResolveEvents(events []CalendarEvent, now time.Time) ([]ResolvedEvent, []error) {
	var (
		out  []ResolvedEvent
		errs []error
	)
	for _, ev := range events {
		on, ok, err := ev.NextOccurrence(now)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		out = append(out, ResolvedEvent{CalendarEvent: ev, On: on, Days: DaysUntil(on, now)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out, errs
}

// CalendarFilter narrows events by category and free-text search
type CalendarFilter struct {
	Category string
	Search   string
}

// Match reports whether the event passes the filter. Search looks at the
// name, the niches and the category.
func (f CalendarFilter) Match(ev CalendarEvent) bool {
	if f.Category != "" && f.Category != "All" && ev.Category != f.Category {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(ev.Name), q) || strings.Contains(strings.ToLower(ev.Category), q) {
		return true
	}
	for _, n := range ev.Niches {
		if strings.Contains(strings.ToLower(n), q) {
			return true
		}
	}
	return false
}

// Apply returns the matching events in order
func (f CalendarFilter) Apply(events []ResolvedEvent) []ResolvedEvent {
	out := make([]ResolvedEvent, 0, len(events))
	for _, ev := range events {
		if f.Match(ev.CalendarEvent) {
			out = append(out, ev)
		}
	}
	return out
}

// MonthGroup is the events falling in one month
type MonthGroup struct {
	Label  string
	Events []ResolvedEvent
}

// GroupByMonth groups events under "January 2026" style labels. Groups
// appear in the order their first event appears.
func GroupByMonth(events []ResolvedEvent) []MonthGroup {
	var groups []MonthGroup
	index := map[string]int{}
	for _, ev := range events {
		label := ev.On.Format("January 2006")
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Label: label})
		}
		groups[i].Events = append(groups[i].Events, ev)
	}
	return groups
}

// CountBuckets counts events per urgency bucket
func CountBuckets(events []ResolvedEvent) map[UrgencyBucket]int {
	counts := make(map[UrgencyBucket]int, len(UrgencyBuckets))
	for _, b := range UrgencyBuckets {
		counts[b] = 0
	}
	for _, ev := range events {
		counts[ev.Bucket()]++
	}
	return counts
}
