package logging

import "log/slog"

// SlogSink forwards events to a structured slog.Logger. It is the default
// sink wired by the CLI; a JSONLWriter can be added alongside it when
// --log-file is set.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink wraps logger, or slog.Default() if nil.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger.With("component", "engine")}
}

func (s *SlogSink) Write(event *Event) error {
	attrs := []any{
		slog.String("event_type", event.EventType),
		slog.String("run_id", event.RunID),
	}
	if event.UserID != "" {
		attrs = append(attrs, slog.String("user_id", event.UserID))
	}
	if len(event.Data) > 0 {
		attrs = append(attrs, slog.String("data", string(event.Data)))
	}
	s.logger.Info(event.Summary, attrs...)
	return nil
}

func (s *SlogSink) Close() error { return nil }
