// FILE: lixenwraith/buflog/cmd/buflog/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		path      string
		overrides []string
		dump      bool
	}{
		{"empty", nil, "", nil, false},
		{"path only", []string{"app.toml"}, "app.toml", nil, false},
		{"prefixed override", []string{"--buflog.directory=/tmp/x"}, "", []string{"directory=/tmp/x"}, false},
		{"bare override", []string{"sanitize=txt"}, "", []string{"sanitize=txt"}, false},
		{"dump and path", []string{"--dump", "app.toml", "--buflog.sanitize=strip"}, "app.toml", []string{"sanitize=strip"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, overrides, dump, help := parseArgs(tt.args)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.overrides, overrides)
			assert.Equal(t, tt.dump, dump)
			assert.False(t, help)
		})
	}
}

func TestRunLogsStdin(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := runCLI(t, "first line\nsecond line\n", "--buflog.directory="+dir)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Logged 2 entries to 1 file(s) in "+dir)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Contains(t, stdout, files[0].Name())

	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, ";first line")
	assert.True(t, strings.HasSuffix(content, ";second line"))
}

func TestRunFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "buflog.toml")
	toml := "[buflog]\ndirectory = \"" + filepath.ToSlash(dir) + "\"\nsanitize = \"txt\"\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(toml), 0644))

	code, _, stderr := runCLI(t, "tab\there\n", cfgPath)
	require.Equal(t, 0, code, stderr)

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	data, err := os.ReadFile(filepath.Join(dir, files[0].Name()))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), ";tab<09>here"))
}

func TestRunDump(t *testing.T) {
	dir := t.TempDir()

	code, stdout, stderr := runCLI(t, "entry\n", "--dump", "directory="+dir)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "(buflog.Stats)")
	assert.Contains(t, stdout, "Closed: (bool) true")
	assert.Contains(t, stdout, "Flushes: (uint64) 1")
}

func TestRunHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "usage: buflog")
}

func TestRunErrors(t *testing.T) {
	t.Run("invalid override", func(t *testing.T) {
		code, _, stderr := runCLI(t, "", "--buflog.flush_threshold_bytes=abc")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Invalid override")
	})

	t.Run("unknown key", func(t *testing.T) {
		code, _, stderr := runCLI(t, "", "level=debug")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "unknown configuration key 'level'")
	})

	t.Run("missing directory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing")
		code, _, stderr := runCLI(t, "entry\n", "--buflog.directory="+missing)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "failed to flush log buffer")
	})
}
