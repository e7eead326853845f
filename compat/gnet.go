// FILE: lixenwraith/buflog/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps a Synced logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger       *Synced
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *Synced, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.add(LevelDebug, format, args)
}

// Infof logs at info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.add(LevelInfo, format, args)
}

// Warnf logs at warn level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.add(LevelWarn, format, args)
}

// Errorf logs at error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.add(LevelError, format, args)
}

// Fatalf logs at fatal level, closes the logger so the entry reaches disk,
// then triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_ = a.logger.Add(entry("gnet", LevelFatal, msg))
	_ = a.logger.Close()

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *GnetAdapter) add(level, format string, args []any) {
	_ = a.logger.Add(entry("gnet", level, fmt.Sprintf(format, args...)))
}
