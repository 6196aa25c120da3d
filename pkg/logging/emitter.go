package logging

import (
	"encoding/json"
	"time"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

// EmitterConfig holds static metadata stamped onto every event.
type EmitterConfig struct {
	RunID string
}

// Emitter dispatches typed events to one or more sinks.
//
// A nil *Emitter is safe to hold; callers guard emission with:
//
//	if emitter != nil {
//	    _ = emitter.Emit(...)
//	}
type Emitter struct {
	config EmitterConfig
	sinks  []Sink
}

// NewEmitter creates an emitter with the given configuration and sinks.
func NewEmitter(cfg EmitterConfig, sinks ...Sink) *Emitter {
	return &Emitter{config: cfg, sinks: sinks}
}

// Emit constructs an event with the emitter's static metadata and writes it
// to all registered sinks. Returns the first error encountered; callers
// typically discard it with best-effort semantics.
func (e *Emitter) Emit(eventType, summary, userID string, data any) error {
	var raw json.RawMessage
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return errx.Wrap(ErrMarshalData, err)
		}
		raw = b
	}

	event := &Event{
		Timestamp: time.Now().UTC(),
		RunID:     e.config.RunID,
		EventType: eventType,
		Summary:   summary,
		UserID:    userID,
		Data:      raw,
	}

	var firstErr error
	for _, sink := range e.sinks {
		if err := sink.Write(event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes all sinks, returning the first error encountered.
func (e *Emitter) Close() error {
	var firstErr error
	for _, sink := range e.sinks {
		if err := sink.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
