// FILE: lixenwraith/buflog/storage_test.go
package buflog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/buflog/stamp"
)

func TestFlushPath(t *testing.T) {
	ts := stamp.Derive(1792413296)

	assert.Equal(t, "logs/19.10.2026 - 12:34:56.txt", FlushPath("logs", ts))
	// Directory is joined verbatim
	assert.Equal(t, "logs//19.10.2026 - 12:34:56.txt", FlushPath("logs/", ts))
	assert.Equal(t, "/1.1.1970 - 0:0:0.txt", FlushPath("", stamp.Derive(0)))
}

func TestDirStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.1.1970 - 0:0:0.txt")
	store := DirStore{}

	require.NoError(t, store.WriteFile(path, []byte("first content")))
	require.NoError(t, store.WriteFile(path, []byte("second")))

	assert.Equal(t, "second", readFile(t, path))
}

func TestDirStoreDoesNotCreateDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	err := DirStore{}.WriteFile(filepath.Join(dir, "x.txt"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NoDirExists(t, dir)
}

func TestFlushError(t *testing.T) {
	cause := errors.New("read-only file system")
	err := error(&FlushError{Path: "logs/a.txt", Err: cause})

	assert.Equal(t, "buflog: failed to flush log buffer to 'logs/a.txt': read-only file system", err.Error())
	assert.ErrorIs(t, err, cause)
}
