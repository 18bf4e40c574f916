// Package stream reads Server-Sent Events. It understands the subset of
// the event-stream format the backend emits: named events, multi-line
// data, ids and comments.
package stream
