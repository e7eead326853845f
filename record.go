// FILE: lixenwraith/buflog/record.go
package buflog

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/buflog/stamp"
)

// appendRecord stamps text with the current time and appends it to the buffer
func (l *Logger) appendRecord(text string) {
	if !l.sanitizer.Passthrough() {
		text = l.sanitizer.Sanitize(text)
	}

	ts := stamp.NowFrom(l.clock)
	l.buf = ts.AppendTo(l.buf)
	l.buf = append(l.buf, EntrySeparator)
	l.buf = append(l.buf, text...)
	l.size = len(l.buf)
}

// overThreshold reports whether the buffer must be flushed
func (l *Logger) overThreshold() bool {
	return int64(l.size) > l.cfg.FlushThresholdBytes
}

// internalLog handles writing internal logger diagnostics to stderr, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.cfg.InternalErrorsToStderr {
		return
	}

	// Ensure consistent "buflog: " prefix
	if !strings.HasPrefix(format, "buflog: ") {
		format = "buflog: " + format
	}

	fmt.Fprintf(l.diag, format, args...)
}
