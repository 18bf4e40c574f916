package scrape

import (
	"context"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/stream"
)

// Source opens the scrape event stream
type Source interface {
	OpenScrape(ctx context.Context) (stream.Reader, error)
}

// JobTracker defines the interface for the scrape progress tracker.
type JobTracker interface {
	SetUpdateCallback(func(model.ScrapeJob))
	SetCompleteCallback(func())
	Snapshot() model.ScrapeJob
	Trigger() bool
	Dismiss()
	Close()
}

var _ JobTracker = (*Tracker)(nil)
