package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

// Event names on the analysis stream
const (
	eventStep     = "step"
	eventError    = "error"
	eventComplete = "complete"
)

var errStreamingUnsupported = errors.New("streaming not supported")

// streamError is the payload of an error event
type streamError struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
}

// eventStream writes Server-Sent Events to a single response. Events carry a
// sequence id starting at 1.
type eventStream struct {
	w       http.ResponseWriter
	flusher http.Flusher
	lastID  int
	buf     bytes.Buffer
}

// newEventStream sets the stream headers and commits the response status
func newEventStream(w http.ResponseWriter) (*eventStream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errStreamingUnsupported
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &eventStream{w: w, flusher: flusher}, nil
}

func (s *eventStream) send(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", event, err)
	}

	s.lastID++
	s.buf.Reset()
	fmt.Fprintf(&s.buf, "id: %d\nevent: %s\ndata: %s\n\n", s.lastID, event, data)
	if _, err := s.w.Write(s.buf.Bytes()); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *eventStream) step(event pipeline.ProgressEvent) error {
	return s.send(eventStep, event)
}

func (s *eventStream) fail(status int, message string) error {
	return s.send(eventError, streamError{Status: status, Error: message})
}

func (s *eventStream) complete(result any) error {
	return s.send(eventComplete, result)
}
