package status

import (
	"sync"
	"time"
)

// RotationEvent is an immutable record of one rotation attempt, kept for
// the status console's history and the JSON API.
type RotationEvent struct {
	Timestamp time.Time
	OldMAC    string
	NewMAC    string
	Vendor    string
	OldIP     string
	NewIP     string
	Success   bool
	Error     string
}

// RotationRing is a fixed-capacity ring buffer of the most recent rotation
// events, guarded by a mutex (writes are infrequent — once per rotation
// tick — so a plain lock outperforms anything fancier here).
type RotationRing struct {
	mu       sync.Mutex
	capacity int
	events   []RotationEvent
}

// NewRotationRing returns a ring holding at most capacity events.
func NewRotationRing(capacity int) *RotationRing {
	return &RotationRing{capacity: capacity}
}

// Push appends an event, evicting the oldest if the ring is full.
func (r *RotationRing) Push(e RotationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if len(r.events) > r.capacity {
		r.events = r.events[len(r.events)-r.capacity:]
	}
}

// Snapshot returns a copy of the events currently held, oldest first.
func (r *RotationRing) Snapshot() []RotationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RotationEvent, len(r.events))
	copy(out, r.events)
	return out
}
