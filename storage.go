// FILE: lixenwraith/buflog/storage.go
package buflog

import (
	"os"

	"github.com/lixenwraith/buflog/stamp"
)

// Store writes a named file's full content, replacing any existing file.
// Implementations must not create missing directories.
type Store interface {
	WriteFile(name string, data []byte) error
}

// DirStore is the default Store backed by the local filesystem
type DirStore struct{}

// WriteFile creates or truncates name and writes data to it
func (DirStore) WriteFile(name string, data []byte) error {
	return os.WriteFile(name, data, filePerm)
}

// FlushError reports a failed flush. The buffer is left intact.
type FlushError struct {
	Path string
	Err  error
}

func (e *FlushError) Error() string {
	return "buflog: failed to flush log buffer to '" + e.Path + "': " + e.Err.Error()
}

func (e *FlushError) Unwrap() error {
	return e.Err
}

// FlushPath returns the file a flush stamped with ts writes to.
// The rendered timestamp is used verbatim, colons and spaces included.
func FlushPath(directory string, ts stamp.Timestamp) string {
	return directory + "/" + ts.String() + "." + FileExtension
}

// flush writes the whole buffer to path and clears it on success
func (l *Logger) flush(path string) error {
	if err := l.store.WriteFile(path, l.buf); err != nil {
		l.internalLog("failed to write log file '%s': %v\n", path, err)
		return &FlushError{Path: path, Err: err}
	}

	l.flushes++
	l.lastPath = path
	l.buf = l.buf[:0]
	l.size = 0
	return nil
}
