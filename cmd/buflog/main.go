// FILE: lixenwraith/buflog/cmd/buflog/main.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/buflog"
)

const usage = `usage: buflog [--dump] [config.toml] [--buflog.key=value ...]

Reads lines from stdin and logs each one as an entry.
Keys: directory, max_entry_bytes, flush_threshold_bytes, sanitize, internal_errors_to_stderr
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	path, overrides, dump, help := parseArgs(args)
	if help {
		fmt.Fprint(stdout, usage)
		return 0
	}

	cfg := buflog.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = buflog.NewConfigFromFile(path); err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return 1
		}
	}
	if err := cfg.ApplyOverride(overrides...); err != nil {
		fmt.Fprintf(stderr, "Invalid override: %v\n", err)
		return 1
	}

	var (
		logger *buflog.Logger
		lines  int
		files  []string
	)
	err := buflog.UseWithConfig(cfg, func(l *buflog.Logger) error {
		logger = l

		scanner := bufio.NewScanner(stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			if err := l.Add(scanner.Text()); err != nil {
				return err
			}
			lines++
			files = noteFile(files, l.LastFlushPath())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("buflog: failed to read stdin: %w", err)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// The logger is closed but its state stays readable
	files = noteFile(files, logger.LastFlushPath())

	fmt.Fprintf(stdout, "Logged %d entries to %d file(s) in %s\n", lines, len(files), cfg.Directory)
	for _, f := range files {
		fmt.Fprintf(stdout, "  %s\n", f)
	}

	if dump {
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(stdout, logger.Stats())
	}
	return 0
}

// parseArgs separates the CLI's own flags, the config path and config overrides.
// Overrides are accepted as "--buflog.key=value" or bare "key=value".
func parseArgs(args []string) (path string, overrides []string, dump, help bool) {
	for _, arg := range args {
		switch {
		case arg == "--dump" || arg == "-dump":
			dump = true
		case arg == "--help" || arg == "-h":
			help = true
		case strings.HasPrefix(arg, "--buflog."):
			overrides = append(overrides, strings.TrimPrefix(arg, "--buflog."))
		case strings.Contains(arg, "=") || path != "":
			overrides = append(overrides, arg)
		default:
			path = arg
		}
	}
	return path, overrides, dump, help
}

// noteFile appends path unless it is empty or repeats the latest entry
func noteFile(files []string, path string) []string {
	if path == "" || (len(files) > 0 && files[len(files)-1] == path) {
		return files
	}
	return append(files, path)
}
