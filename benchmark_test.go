// FILE: lixenwraith/buflog/benchmark_test.go
package buflog

import (
	"strings"
	"testing"
	"time"
)

// discardStore drops every write
type discardStore struct{}

func (discardStore) WriteFile(string, []byte) error { return nil }

// BenchmarkAdd benchmarks buffering with periodic threshold flushes
func BenchmarkAdd(b *testing.B) {
	logger := New(b.TempDir(), WithStore(discardStore{}), WithClock(&manualClock{t: time.Now()}))
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logger.Add("benchmark message")
	}
}

// BenchmarkAddOversized benchmarks the warning path
func BenchmarkAddOversized(b *testing.B) {
	logger := New(b.TempDir(), WithStore(discardStore{}), WithClock(&manualClock{t: time.Now()}))
	defer logger.Close()
	big := strings.Repeat("x", 2048)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logger.Add(big)
	}
}

// BenchmarkAddSanitized benchmarks entries through the txt sanitizer
func BenchmarkAddSanitized(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Directory = b.TempDir()
	cfg.Sanitize = SanitizeTxt
	logger, err := NewWithConfig(cfg, WithStore(discardStore{}))
	if err != nil {
		b.Fatal(err)
	}
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = logger.Add("tab\tseparated\x00message")
	}
}
