// FILE: lixenwraith/buflog/constant.go
package buflog

// Entry layout
const (
	// Separates the rendered timestamp from the entry text
	EntrySeparator = ';'
	// Extension of every flushed log file
	FileExtension = "txt"
)

// Size limits
const (
	// Entries longer than this are preceded by OversizeWarning
	DefaultMaxEntryBytes int64 = 1024
	// Buffer length that triggers a flush once exceeded
	DefaultFlushThresholdBytes int64 = 1024

	// Upper bound on the buffer capacity reserved at construction
	maxInitialBufferBytes int64 = 4096
)

// OversizeWarning is logged ahead of an entry longer than the default entry limit
const OversizeWarning = "Attempted to log an entry larger than 1024 bytes"

// oversizeWarningFormat renders the warning for a configured entry limit
const oversizeWarningFormat = "Attempted to log an entry larger than %d bytes"

// Sanitize policies
const (
	SanitizeRaw   = "raw"
	SanitizeTxt   = "txt"
	SanitizeStrip = "strip"
)

// Written file permissions
const filePerm = 0644
