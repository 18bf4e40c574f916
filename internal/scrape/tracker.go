package scrape

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/novraux/novraux-desk/internal/model"
	"github.com/novraux/novraux-desk/internal/stream"
)

// DefaultResetDelay is how long a completed job stays visible
const DefaultResetDelay = time.Second

// Event names sent by the scrape endpoint
const (
	EventProgress = "progress"
	EventComplete = "complete"
	EventError    = "error"
)

// Tracker manages one scrape job at a time
type Tracker struct {
	source     Source
	resetDelay time.Duration

	mu         sync.Mutex
	job        model.ScrapeJob
	reader     stream.Reader         // open stream of the active job
	cancel     context.CancelFunc
	resetTimer *time.Timer
	closed     bool
	onUpdate   func(model.ScrapeJob) // callback for UI updates
	onComplete func()                // called after the reset following completion
}

// NewTracker creates an idle tracker reading from source
func NewTracker(source Source, resetDelay time.Duration) *Tracker {
	if resetDelay <= 0 {
		resetDelay = DefaultResetDelay
	}
	return &Tracker{
		source:     source,
		resetDelay: resetDelay,
		job:        model.ScrapeJob{State: model.ScrapeIdle},
	}
}

// SetUpdateCallback sets the callback function for job updates
func (t *Tracker) SetUpdateCallback(callback func(model.ScrapeJob)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onUpdate = callback
}

// SetCompleteCallback sets the callback run once a completed job resets to Idle
func (t *Tracker) SetCompleteCallback(callback func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onComplete = callback
}

// Snapshot returns the current job
func (t *Tracker) Snapshot() model.ScrapeJob {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.job
}

// Trigger starts a scrape. It returns false and does nothing while a job
// is connecting, running or showing its completion.
func (t *Tracker) Trigger() bool {
	t.mu.Lock()
	if t.closed || !t.job.State.CanTrigger() {
		t.mu.Unlock()
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.job = model.ScrapeJob{
		ID:        generateJobID(),
		State:     model.ScrapeConnecting,
		Status:    model.ScrapeStatusConnecting,
		Progress:  0,
		StartedAt: time.Now(),
	}
	job := t.job
	t.mu.Unlock()

	t.notifyUpdate(job)
	go t.run(ctx, job.ID)
	return true
}

// Dismiss clears a failed job back to Idle
func (t *Tracker) Dismiss() {
	t.mu.Lock()
	if t.job.State != model.ScrapeFailed {
		t.mu.Unlock()
		return
	}
	t.job = model.ScrapeJob{State: model.ScrapeIdle}
	job := t.job
	t.mu.Unlock()

	t.notifyUpdate(job)
}

// Close releases the stream of an active job and stops pending resets.
// The tracker accepts no triggers afterwards.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.closed = true
	reader := t.releaseLocked()
	if t.resetTimer != nil {
		t.resetTimer.Stop()
		t.resetTimer = nil
	}
	t.mu.Unlock()

	if reader != nil {
		reader.Close()
	}
}

// run consumes the stream of job id until a terminal event
func (t *Tracker) run(ctx context.Context, id string) {
	reader, err := t.source.OpenScrape(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Printf("Scrape %s: failed to open stream: %v", id, err)
		t.finish(id, failWith(model.ScrapeDefaultError))
		return
	}
	if !t.attach(id, reader) {
		reader.Close()
		return
	}

	for {
		ev, err := reader.Next()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, stream.ErrClosed) {
				return
			}
			if errors.Is(err, io.EOF) {
				log.Printf("Scrape %s: stream ended without result", id)
			} else {
				log.Printf("Scrape %s: stream error: %v", id, err)
			}
			t.finish(id, failWith(model.ScrapeDefaultError))
			return
		}

		switch ev.Name {
		case EventComplete:
			t.finish(id, func(job *model.ScrapeJob) {
				job.State = model.ScrapeCompleted
				job.Status = model.ScrapeStatusComplete
				job.Progress = 100
			})
			return
		case EventError:
			t.finish(id, failWith(errorMessage(ev.Data)))
			return
		case EventProgress:
			var frame progressFrame
			if err := json.Unmarshal([]byte(ev.Data), &frame); err != nil {
				log.Printf("Scrape %s: skipping malformed progress frame %q: %v", id, ev.Data, err)
				continue
			}
			t.progress(id, frame)
		default:
			log.Printf("Scrape %s: ignoring %q event", id, ev.Name)
		}
	}
}

// progressFrame is the payload of a progress event
type progressFrame struct {
	Status   *string  `json:"status"`
	Progress *float64 `json:"progress"`
}

// errorMessage extracts the status text of an error event
func errorMessage(data string) string {
	var frame progressFrame
	if err := json.Unmarshal([]byte(data), &frame); err != nil || frame.Status == nil || *frame.Status == "" {
		return model.ScrapeDefaultError
	}
	return *frame.Status
}

func failWith(message string) func(*model.ScrapeJob) {
	return func(job *model.ScrapeJob) {
		job.State = model.ScrapeFailed
		job.Error = message
	}
}

// attach hands the opened stream to the tracker. It returns false when
// the job is no longer current and the caller must close the stream.
func (t *Tracker) attach(id string, reader stream.Reader) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed || t.job.ID != id || !t.job.State.IsActive() {
		return false
	}
	t.reader = reader
	return true
}

// progress applies a progress frame as received
func (t *Tracker) progress(id string, frame progressFrame) {
	t.mu.Lock()
	if t.closed || t.job.ID != id || !t.job.State.IsActive() {
		t.mu.Unlock()
		return
	}
	t.job.State = model.ScrapeRunning
	if frame.Status != nil {
		t.job.Status = *frame.Status
	}
	if frame.Progress != nil {
		t.job.Progress = *frame.Progress
	}
	job := t.job
	t.mu.Unlock()

	t.notifyUpdate(job)
}

// finish moves job id to a terminal state. Every exit from Connecting or
// Running goes through here or through Close.
func (t *Tracker) finish(id string, apply func(*model.ScrapeJob)) {
	t.mu.Lock()
	if t.closed || t.job.ID != id || !t.job.State.IsActive() {
		t.mu.Unlock()
		return
	}
	reader := t.releaseLocked()
	apply(&t.job)
	t.job.FinishedAt = time.Now()
	if t.job.State == model.ScrapeCompleted {
		t.resetTimer = time.AfterFunc(t.resetDelay, func() { t.reset(id) })
	}
	job := t.job
	t.mu.Unlock()

	if reader != nil {
		reader.Close()
	}
	t.notifyUpdate(job)
}

// reset returns a completed job to Idle and fires the completion callback
func (t *Tracker) reset(id string) {
	t.mu.Lock()
	if t.closed || t.job.ID != id || t.job.State != model.ScrapeCompleted {
		t.mu.Unlock()
		return
	}
	t.resetTimer = nil
	t.job = model.ScrapeJob{State: model.ScrapeIdle}
	job := t.job
	onComplete := t.onComplete
	t.mu.Unlock()

	t.notifyUpdate(job)
	if onComplete != nil {
		onComplete()
	}
}

// releaseLocked detaches the stream and cancels the job context.
// t.mu must be held.
func (t *Tracker) releaseLocked() stream.Reader {
	reader := t.reader
	t.reader = nil
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	return reader
}

// notifyUpdate notifies about job updates
func (t *Tracker) notifyUpdate(job model.ScrapeJob) {
	t.mu.Lock()
	onUpdate := t.onUpdate
	t.mu.Unlock()

	if onUpdate != nil {
		onUpdate(job)
	}
}

// generateJobID generates a unique job ID
func generateJobID() string {
	return "scrape-" + uuid.NewString()
}
