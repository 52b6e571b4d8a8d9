package core

import "log/slog"

// Default configuration values.
const (
	DefaultMaxHistory   = 1000
	DefaultSignalBuffer = 100
)

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial content. It is also the first history entry.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initContent = content
	}
}

// WithMaxHistory bounds the number of history entries. Zero or less keeps
// every entry.
func WithMaxHistory(max int) Option {
	return func(s *Session) {
		s.maxHistory = max
	}
}

// WithGroupedInsertUndo records one history entry per insert session instead
// of one per change, so a single undo removes everything typed in it.
func WithGroupedInsertUndo() Option {
	return func(s *Session) {
		s.groupInsert = true
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSignalBuffer sets the capacity of the signal channel.
func WithSignalBuffer(size int) Option {
	return func(s *Session) {
		if size >= 0 {
			s.signalBuffer = size
		}
	}
}
