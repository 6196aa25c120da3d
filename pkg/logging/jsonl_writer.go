package logging

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/blackridgelabs/rangewalker/internal/errx"
)

// JSONLWriter writes structured events as JSON-L to a file. It implements
// Sink and is safe for concurrent use. Rotation and shutdown records are
// the audit trail a range operator reconstructs a run's identity history
// from, so those lines are fsynced as they land; the much higher-volume
// fetch/walk chatter rides the OS page cache and is only guaranteed
// durable at Close.
type JSONLWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
}

// durableEventTypes are synced to disk immediately on Write rather than
// left to Close, so a killed process still leaves a usable rotation
// history behind.
var durableEventTypes = map[string]bool{
	EventRotationResult: true,
	EventShutdown:       true,
}

// NewJSONLWriter creates a writer that appends to the given file path. The
// parent directory must already exist. The file is created if absent.
func NewJSONLWriter(path string) (*JSONLWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errx.Wrap(ErrCreateLogFile, err)
	}
	return &JSONLWriter{
		file: f,
		enc:  json.NewEncoder(f),
	}, nil
}

// Write serializes the event as a single JSON line, syncing immediately
// for durableEventTypes.
func (w *JSONLWriter) Write(event *Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(event); err != nil {
		return errx.Wrap(ErrWriteEvent, err)
	}
	if durableEventTypes[event.EventType] {
		_ = w.file.Sync()
	}
	return nil
}

// Close syncs and closes the underlying file.
func (w *JSONLWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.file.Sync()
	if err := w.file.Close(); err != nil {
		return errx.Wrap(ErrCloseWriter, err)
	}
	return nil
}
