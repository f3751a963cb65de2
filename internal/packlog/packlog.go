// Package packlog adapts cratepack's LogSink interface to log/slog, the
// way the rest of the example pack wires its own domain packages to a
// shared structured logger.
package packlog

import "log/slog"

// SlogSink implements cratepack.LogSink on top of a *slog.Logger. It
// satisfies the interface structurally (cratepack never imports this
// package, so there is no import cycle between the core and its logging
// adapter).
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink wraps logger. A nil logger falls back to slog.Default().
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Debug(msg string, kv ...any) {
	s.logger.Debug(msg, kv...)
}

func (s *SlogSink) Info(msg string, kv ...any) {
	s.logger.Info(msg, kv...)
}
