// Package scrape tracks the single in-flight trend scrape job.
//
// A Tracker opens the scrape event stream on Trigger and turns its events
// into ScrapeJob snapshots: Idle, Connecting, Running, then Completed or
// Failed. The stream is owned by the tracker and released on every exit,
// including Close during teardown. A completed job falls back to Idle after
// a short delay and then fires the completion callback, which callers use
// to refresh the trend list.
package scrape
