package logging

import (
	"encoding/json"
	"time"
)

// Event is the canonical structured event emitted by the engine.
// Required fields: Timestamp, RunID, EventType, Summary.
type Event struct {
	Timestamp time.Time       `json:"ts"`
	RunID     string          `json:"run_id"`
	EventType string          `json:"event_type"`
	Summary   string          `json:"summary"`
	UserID    string          `json:"user_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Event type constants.
const (
	EventRotationAttempt = "rotation_attempt"
	EventRotationResult  = "rotation_result"
	EventPauseRaised     = "pause_raised"
	EventPauseLowered    = "pause_lowered"
	EventFetchError      = "fetch_error"
	EventWalkAbandoned   = "walk_abandoned"
	EventSiteListWarning = "site_list_warning"
	EventShutdown        = "shutdown"
)

// RotationData is the payload for rotation_attempt/rotation_result events.
type RotationData struct {
	Generation int64  `json:"generation"`
	OldMAC     string `json:"old_mac,omitempty"`
	NewMAC     string `json:"new_mac"`
	Vendor     string `json:"vendor"`
	OldIP      string `json:"old_ip,omitempty"`
	NewIP      string `json:"new_ip"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// FetchErrorData is the payload for fetch_error events.
type FetchErrorData struct {
	URL   string `json:"url"`
	Depth int    `json:"depth"`
	Error string `json:"error"`
}

// SiteWarningData is the payload for site_list_warning events.
type SiteWarningData struct {
	Line string `json:"line"`
}
