// Package feedback provides FeedbackSink implementations for platforms
// without a haptics layer.
package feedback

import (
	"github.com/rs/zerolog"

	"github.com/bnema/tabdrag/internal/application/port"
)

// LogSink logs every feedback event at debug level. It stands in for the
// platform haptics/sound layer in the CLI front ends.
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink creates a logging feedback sink.
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger.With().Str("component", "feedback").Logger()}
}

// Emit implements port.FeedbackSink.
func (s *LogSink) Emit(event port.FeedbackEvent) {
	s.logger.Debug().Str("event", event.String()).Msg("feedback")
}

// NopSink discards every event, for when feedback is disabled.
type NopSink struct{}

// Emit implements port.FeedbackSink.
func (NopSink) Emit(port.FeedbackEvent) {}
