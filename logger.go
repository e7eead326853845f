// FILE: lixenwraith/buflog/logger.go
package buflog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/buflog/sanitizer"
	"github.com/lixenwraith/buflog/stamp"
)

// ErrClosed is returned by Add once the logger has been closed
var ErrClosed = errors.New("buflog: logger is closed")

// Logger accumulates stamped entries in memory and flushes them to
// timestamp-named files. A Logger is not safe for concurrent use.
type Logger struct {
	cfg       *Config
	sanitizer *sanitizer.Sanitizer
	store     Store
	clock     stamp.Clock
	diag      io.Writer

	buf      []byte
	size     int
	flushes  uint64
	head      stamp.Timestamp
	warning   string
	closed    bool // Close has been called, Add is rejected
	finalized bool // the closing flush succeeded
	lastPath  string
}

// Option customizes collaborators of a Logger
type Option func(*Logger)

// WithStore replaces the filesystem collaborator
func WithStore(s Store) Option {
	return func(l *Logger) {
		if s != nil {
			l.store = s
		}
	}
}

// WithClock replaces the clock collaborator
func WithClock(c stamp.Clock) Option {
	return func(l *Logger) {
		l.clock = c
	}
}

// withDiagnostics redirects internal diagnostics, used by tests
func withDiagnostics(w io.Writer) Option {
	return func(l *Logger) {
		l.diag = w
	}
}

// New creates a logger writing to directory with default settings.
// The directory is used verbatim and must already exist for flushes to succeed.
func New(directory string, opts ...Option) *Logger {
	cfg := DefaultConfig()
	cfg.Directory = directory
	return newLogger(cfg, opts)
}

// NewWithConfig creates a logger from a validated copy of cfg
func NewWithConfig(cfg *Config, opts ...Option) (*Logger, error) {
	if cfg == nil {
		return nil, fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmtErrorf("invalid configuration: %w", err)
	}
	return newLogger(cfg.Clone(), opts), nil
}

func newLogger(cfg *Config, opts []Option) *Logger {
	l := &Logger{
		cfg:       cfg,
		sanitizer: sanitizer.New().Policy(sanitizer.PolicyPreset(cfg.Sanitize)),
		store:     DirStore{},
		diag:      os.Stderr,
		buf:       make([]byte, 0, min(cfg.FlushThresholdBytes, maxInitialBufferBytes)+1),
		warning:   OversizeWarning,
	}
	if cfg.MaxEntryBytes != DefaultMaxEntryBytes {
		l.warning = fmt.Sprintf(oversizeWarningFormat, cfg.MaxEntryBytes)
	}

	for _, opt := range opts {
		opt(l)
	}

	// Head is fixed for the logger's lifetime and names size-triggered flushes
	l.head = stamp.NowFrom(l.clock)
	return l
}

// Add appends a stamped entry to the buffer and flushes the buffer to the
// head-stamped file once it grows past the flush threshold.
//
// An entry longer than the entry limit is not rejected: a warning entry is
// appended first, then the entry itself in full. Each is stamped and checked
// against the threshold on its own. A failed flush keeps the buffer so the
// next Add or Close retries it.
func (l *Logger) Add(entry string) error {
	if l.closed {
		return ErrClosed
	}

	pending := []string{entry}
	if int64(len(entry)) > l.cfg.MaxEntryBytes {
		pending = []string{l.warning, entry}
	}

	var err error
	for _, text := range pending {
		l.appendRecord(text)
		if err == nil && l.overThreshold() {
			err = l.flush(FlushPath(l.cfg.Directory, l.head))
		}
	}
	return err
}

// Close writes the buffer, even when empty, to a file stamped with the
// current time. Add is rejected from the first call on. A failed Close keeps
// the buffer and a later Close retries it under a fresh stamp; once a Close
// has succeeded, later calls are no-ops.
func (l *Logger) Close() error {
	if l.finalized {
		return nil
	}
	l.closed = true

	if err := l.flush(FlushPath(l.cfg.Directory, stamp.NowFrom(l.clock))); err != nil {
		return err
	}
	l.finalized = true
	return nil
}

// Use creates a logger for directory, runs fn with it and closes the logger
// on every exit path. A panic in fn is re-raised after the logger is closed.
func Use(directory string, fn func(*Logger) error) error {
	return use(New(directory), fn)
}

// UseWithConfig is Use for a configured logger
func UseWithConfig(cfg *Config, fn func(*Logger) error, opts ...Option) error {
	l, err := NewWithConfig(cfg, opts...)
	if err != nil {
		return err
	}
	return use(l, fn)
}

func use(l *Logger, fn func(*Logger) error) (err error) {
	defer func() {
		closeErr := l.Close()
		if r := recover(); r != nil {
			panic(r)
		}
		err = combineErrors(err, closeErr)
	}()

	return fn(l)
}

// Size returns the buffered byte count
func (l *Logger) Size() int {
	return l.size
}

// Flushes returns the number of successful flushes
func (l *Logger) Flushes() uint64 {
	return l.flushes
}

// Head returns the timestamp captured at construction
func (l *Logger) Head() stamp.Timestamp {
	return l.head
}

// Directory returns the target directory
func (l *Logger) Directory() string {
	return l.cfg.Directory
}

// Buffered returns the unflushed content
func (l *Logger) Buffered() string {
	return string(l.buf)
}

// Closed reports whether Close has been called
func (l *Logger) Closed() bool {
	return l.closed
}

// LastFlushPath returns the file written by the most recent successful flush
func (l *Logger) LastFlushPath() string {
	return l.lastPath
}

// GetConfig returns a copy of the logger configuration
func (l *Logger) GetConfig() *Config {
	return l.cfg.Clone()
}
