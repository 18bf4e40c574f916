package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// DefaultEventName is the name of events sent without an "event:" field
const DefaultEventName = "message"

// ErrClosed is returned by Next after Close
var ErrClosed = errors.New("stream closed")

// Event is one dispatched server-sent event
type Event struct {
	Name string
	Data string
	ID   string
}

// Reader yields events from an open stream
type Reader interface {
	// Next blocks until the next event is dispatched
	Next() (Event, error)

	// Close releases the connection; pending Next calls return an error
	Close() error
}

// Stream is a Reader over an HTTP response body
type Stream struct {
	body      io.ReadCloser
	reader    *bufio.Reader
	lastID    string
	closeOnce sync.Once
	closed    chan struct{}
}

// Open requests url as an event stream. The request is bound to ctx, so
// cancelling ctx also unblocks Next.
func Open(ctx context.Context, client *http.Client, url string) (*Stream, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open stream: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("open stream: unexpected status %d", resp.StatusCode)
	}
	return NewStream(resp.Body), nil
}

// NewStream wraps an already open body
func NewStream(body io.ReadCloser) *Stream {
	return &Stream{
		body:   body,
		reader: bufio.NewReader(body),
		closed: make(chan struct{}),
	}
}

// Next returns the next event. A partial event at end of stream is
// discarded and io.EOF returned.
func (s *Stream) Next() (Event, error) {
	var (
		name    string
		data    strings.Builder
		hasData bool
	)
	for {
		line, err := s.readLine()
		if err != nil {
			select {
			case <-s.closed:
				return Event{}, ErrClosed
			default:
			}
			return Event{}, err
		}

		if line == "" {
			if !hasData && name == "" {
				continue
			}
			ev := Event{Name: name, Data: data.String(), ID: s.lastID}
			if ev.Name == "" {
				ev.Name = DefaultEventName
			}
			return ev, nil
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, found := strings.Cut(line, ":")
		if found {
			value = strings.TrimPrefix(value, " ")
		}
		switch field {
		case "event":
			name = value
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "id":
			if !strings.ContainsRune(value, 0) {
				s.lastID = value
			}
		}
	}
}

// readLine returns one line without its terminator. CRLF, LF and a lone
// CR all end a line.
func (s *Stream) readLine() (string, error) {
	var b strings.Builder
	for {
		r, _, err := s.reader.ReadRune()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				// Unterminated last line; the event cannot be complete.
				return "", io.EOF
			}
			return "", err
		}
		switch r {
		case '\n':
			return b.String(), nil
		case '\r':
			if next, err := s.reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = s.reader.ReadByte()
			}
			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}
}

// Close releases the underlying connection. It is safe to call repeatedly.
func (s *Stream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		err = s.body.Close()
	})
	return err
}
