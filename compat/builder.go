// FILE: lixenwraith/buflog/compat/builder.go
package compat

import (
	"fmt"

	"github.com/lixenwraith/buflog"
)

// Builder provides a flexible way to create logger adapters for gnet and fasthttp
// that share one serialized buflog.Logger.
// It can use an existing *buflog.Logger instance or create a new one from a *buflog.Config
type Builder struct {
	logger  *buflog.Logger
	logCfg  *buflog.Config
	opts    []buflog.Option
	onError func(error)
	synced  *Synced
	err     error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// The builder takes over its synchronization: the caller must not use it directly afterwards.
// If this is set WithConfig is ignored
func (b *Builder) WithLogger(l *buflog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("buflog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// This is used only if an existing logger is NOT provided via WithLogger.
// If neither WithLogger nor WithConfig is used, a default logger will be created
func (b *Builder) WithConfig(cfg *buflog.Config, opts ...buflog.Option) *Builder {
	b.logCfg = cfg
	b.opts = opts
	return b
}

// WithErrorHandler receives flush failures from every adapter
func (b *Builder) WithErrorHandler(handler func(error)) *Builder {
	b.onError = handler
	return b
}

// getSynced resolves the shared logger, creating one if necessary
func (b *Builder) getSynced() (*Synced, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.synced != nil {
		return b.synced, nil
	}

	l := b.logger
	if l == nil {
		cfg := b.logCfg
		if cfg == nil {
			cfg = buflog.DefaultConfig()
		}

		var err error
		l, err = buflog.NewWithConfig(cfg, b.opts...)
		if err != nil {
			return nil, err
		}
		b.logger = l
	}

	// Cache so every adapter from this builder shares one lock
	b.synced = NewSynced(l, b.onError)
	return b.synced, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	s, err := b.getSynced()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(s, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	s, err := b.getSynced()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(s, opts...), nil
}

// GetSynced returns the shared serialized logger, initializing it if needed.
// Close it once the servers using the adapters have stopped.
func (b *Builder) GetSynced() (*Synced, error) {
	return b.getSynced()
}

// --- Example Usage ---
//
//	builder := compat.NewBuilder().WithConfig(cfg)
//
//	gnetLogger, err := builder.BuildGnet()
//	if err != nil { /* handle error */ }
//
//	fasthttpLogger, err := builder.BuildFastHTTP()
//	if err != nil { /* handle error */ }
//
//	shared, _ := builder.GetSynced()
//	defer shared.Close()
//
//	go gnet.Run(events, "tcp://:9000", gnet.WithLogger(gnetLogger))
//
//	server := &fasthttp.Server{Handler: handler, Logger: fasthttpLogger}
//	go server.ListenAndServe(":8080")
