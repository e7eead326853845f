// FILE: lixenwraith/buflog/compat/synced.go
package compat

import (
	"sync"

	"github.com/lixenwraith/buflog"
)

// Level names used in adapter entries
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelFatal = "FATAL"
)

// Synced serializes access to a single-writer buflog.Logger so it can be
// shared by server goroutines
type Synced struct {
	mu      sync.Mutex
	logger  *buflog.Logger
	onError func(error)
}

// NewSynced wraps logger. onError, if set, receives every failed Add or Close.
func NewSynced(logger *buflog.Logger, onError func(error)) *Synced {
	return &Synced{logger: logger, onError: onError}
}

// Add appends an entry under the lock
func (s *Synced) Add(entry string) error {
	s.mu.Lock()
	err := s.logger.Add(entry)
	s.mu.Unlock()

	s.report(err)
	return err
}

// Close closes the underlying logger under the lock
func (s *Synced) Close() error {
	s.mu.Lock()
	err := s.logger.Close()
	s.mu.Unlock()

	s.report(err)
	return err
}

// Stats returns a snapshot of the underlying logger
func (s *Synced) Stats() buflog.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logger.Stats()
}

// Logger returns the wrapped logger. Callers must not use it concurrently with s.
func (s *Synced) Logger() *buflog.Logger {
	return s.logger
}

// entry renders an adapter entry as "[source] LEVEL msg"
func entry(source, level, msg string) string {
	return "[" + source + "] " + level + " " + msg
}

func (s *Synced) report(err error) {
	if err != nil && s.onError != nil {
		s.onError(err)
	}
}
