// FILE: lixenwraith/buflog/state.go
package buflog

// Stats is a snapshot of the logger's runtime state
type Stats struct {
	Directory     string
	Head          string // Rendered head timestamp, names size-triggered flushes
	HeadRaw       uint64 // Seconds since the epoch at construction
	BufferedBytes int
	Flushes       uint64
	LastFlushPath string
	Closed        bool
}

// Stats returns a snapshot of the logger's state
func (l *Logger) Stats() Stats {
	return Stats{
		Directory:     l.cfg.Directory,
		Head:          l.head.String(),
		HeadRaw:       l.head.Raw,
		BufferedBytes: l.size,
		Flushes:       l.flushes,
		LastFlushPath: l.lastPath,
		Closed:        l.closed,
	}
}
