// FILE: lixenwraith/buflog/builder.go
package buflog

import (
	"github.com/lixenwraith/buflog/stamp"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg  *Config
	opts []Option
	err  error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	return NewWithConfig(b.cfg, b.opts...)
}

// Config returns a copy of the configuration built so far.
func (b *Builder) Config() (*Config, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg.Clone(), nil
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// MaxEntryBytes sets the entry size above which a warning entry is added.
func (b *Builder) MaxEntryBytes(size int64) *Builder {
	b.cfg.MaxEntryBytes = size
	return b
}

// FlushThresholdBytes sets the buffer size that triggers a flush.
func (b *Builder) FlushThresholdBytes(size int64) *Builder {
	b.cfg.FlushThresholdBytes = size
	return b
}

// Sanitize sets the entry sanitize policy.
func (b *Builder) Sanitize(policy string) *Builder {
	b.cfg.Sanitize = policy
	return b
}

// InternalErrorsToStderr enables internal diagnostics on stderr.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Override applies "key=value" overrides.
func (b *Builder) Override(overrides ...string) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.cfg.ApplyOverride(overrides...); err != nil {
		b.err = err
	}
	return b
}

// Store sets the filesystem collaborator.
func (b *Builder) Store(s Store) *Builder {
	b.opts = append(b.opts, WithStore(s))
	return b
}

// Clock sets the clock collaborator.
func (b *Builder) Clock(c stamp.Clock) *Builder {
	b.opts = append(b.opts, WithClock(c))
	return b
}

// Example usage:
// logger, err := buflog.NewBuilder().
//
//	Directory("/var/log/app").
//	FlushThresholdBytes(4096).
//	Sanitize("txt").
//	Build()
//
// if err == nil {
//
//	 defer logger.Close()
//	 logger.Add("Logger initialized successfully")
//
// }
