package view

import (
	"context"
	"testing"
	"time"

	"github.com/novraux/novraux-desk/internal/fakebackend"
	"github.com/novraux/novraux-desk/internal/model"
)

func newTestCalendar(t *testing.T, today time.Time) *Calendar {
	t.Helper()
	client, _ := newBackend(t, fakebackend.DefaultFixtures())
	c := NewCalendar(client, func() time.Time { return today })
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	return c
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestCalendarResolved(t *testing.T) {
	tests := []struct {
		name   string
		today  time.Time
		first  string
		days   int
		bucket model.UrgencyBucket
	}{
		{"ten days before halloween", day(2026, time.October, 21), "halloween", 10, model.BucketNow},
		{"forty five days before christmas", day(2026, time.November, 10), "christmas", 45, model.BucketPlan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCalendar(t, tt.today)
			events := c.Resolved()
			if len(events) != 5 {
				t.Fatalf("Resolved() = %d events, expected 5", len(events))
			}
			first := events[0]
			if first.ID != tt.first || first.Days != tt.days || first.Bucket() != tt.bucket {
				t.Errorf("first = %s in %d days (%v), expected %s in %d days (%v)",
					first.ID, first.Days, first.Bucket(), tt.first, tt.days, tt.bucket)
			}
		})
	}
}

func TestCalendarFilters(t *testing.T) {
	c := newTestCalendar(t, day(2026, time.October, 21))
	changes := 0
	c.SetChangeCallback(func() { changes++ })

	c.SetCategory("Holiday")
	if got := len(c.Visible()); got != 3 {
		t.Errorf("Holiday events = %d, expected 3", got)
	}

	c.SetSearch("WITCH")
	visible := c.Visible()
	if len(visible) != 1 || visible[0].ID != "halloween" {
		t.Errorf("Visible() = %v, expected halloween only", visible)
	}

	counts := c.Counts()
	if counts[model.BucketNow] != 1 || counts[model.BucketAhead] != 4 {
		t.Errorf("Counts() = %v, expected counts over all events", counts)
	}
	if changes != 2 {
		t.Errorf("changes = %d, expected 2", changes)
	}

	months := c.Months()
	if len(months) != 1 || months[0].Label != "October 2026" {
		t.Errorf("Months() = %+v", months)
	}
}

func TestCalendarCopyNiches(t *testing.T) {
	c := newTestCalendar(t, day(2026, time.October, 21))

	text, n, err := c.CopyNiches("halloween")
	if err != nil {
		t.Fatalf("CopyNiches() error = %v", err)
	}
	if text != "spooky, witch, pumpkin" || n != 3 {
		t.Errorf("CopyNiches() = %q, %d", text, n)
	}
	if _, _, err := c.CopyNiches("arbor-day"); err == nil {
		t.Error("CopyNiches(unknown) should fail")
	}
}

func TestCalendarExplore(t *testing.T) {
	c := newTestCalendar(t, day(2026, time.October, 21))
	nav := NewNavigator(PageCalendar)

	c.Explore(nav, "pumpkin")
	if seed, ok := nav.TakeSeed(PageExplorer); !ok || seed != "pumpkin" {
		t.Errorf("seed = %q, %v, expected pumpkin", seed, ok)
	}
	if nav.Current() != PageExplorer {
		t.Errorf("Current() = %v, expected %v", nav.Current(), PageExplorer)
	}
}
