package model

import (
	"strconv"
	"time"
)

// ScrapeState represents the phase of a scrape job
type ScrapeState string

const (
	// ScrapeIdle means no scrape is running and the trigger is enabled
	ScrapeIdle ScrapeState = "Idle"

	// ScrapeConnecting means the event stream was requested but no progress arrived yet
	ScrapeConnecting ScrapeState = "Connecting"

	// ScrapeRunning means at least one progress event was received
	ScrapeRunning ScrapeState = "Running"

	// ScrapeCompleted means the backend reported completion
	ScrapeCompleted ScrapeState = "Completed"

	// ScrapeFailed means the backend reported an error or the stream broke
	ScrapeFailed ScrapeState = "Failed"
)

// Fixed status texts shown by the progress panel
const (
	ScrapeStatusConnecting = "Connecting to scraper..."
	ScrapeStatusComplete   = "Complete!"
	ScrapeDefaultError     = "Scraping failed or connection lost."
)

// String returns the string representation of ScrapeState
func (s ScrapeState) String() string {
	return string(s)
}

// IsActive returns true while a stream is open
func (s ScrapeState) IsActive() bool {
	return s == ScrapeConnecting || s == ScrapeRunning
}

// IsFinished returns true if the job reached a terminal state
func (s ScrapeState) IsFinished() bool {
	return s == ScrapeCompleted || s == ScrapeFailed
}

// CanTrigger reports whether a new scrape may start from this state.
// Completed still counts as busy until the delayed reset runs.
func (s ScrapeState) CanTrigger() bool {
	return s == ScrapeIdle || s == ScrapeFailed
}

// ScrapeJob is a snapshot of the scrape tracker
type ScrapeJob struct {
	ID         string
	State      ScrapeState
	Status     string
	Progress   float64
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// ProgressLabel renders the progress value as received, e.g. "42%" or "12.5%"
func (j ScrapeJob) ProgressLabel() string {
	return strconv.FormatFloat(j.Progress, 'f', -1, 64) + "%"
}

// PanelVisible reports whether the progress panel should be shown
func (j ScrapeJob) PanelVisible() bool {
	return j.State.IsActive() || j.State == ScrapeCompleted
}
