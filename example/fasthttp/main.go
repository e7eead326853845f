// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/buflog"
	"github.com/lixenwraith/buflog/compat"
)

func main() {
	// Create and configure logger
	cfg, err := buflog.NewConfigFromDefaults(map[string]any{
		"directory":             "./fasthttp_logs",
		"flush_threshold_bytes": int64(2048),
	})
	if err != nil {
		panic(err)
	}
	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		panic(err)
	}

	builder := compat.NewBuilder().WithConfig(cfg)

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter, err := builder.BuildFastHTTP(
		compat.WithDefaultLevel(compat.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)
	if err != nil {
		panic(err)
	}
	shared, _ := builder.GetSynced()

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		// Other server settings
		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	// Start server
	go func() {
		fmt.Println("Starting server on :8080")
		if err := server.ListenAndServe(":8080"); err != nil {
			fmt.Fprintf(os.Stderr, "server stopped: %v\n", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	_ = server.Shutdown()
	if err := shared.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "final flush failed: %v\n", err)
		os.Exit(1)
	}
	stats := shared.Stats()
	fmt.Printf("Wrote %d file(s), last: %s\n", stats.Flushes, stats.LastFlushPath)
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) string {
	// Can inspect specific fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return compat.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return compat.LevelError
	}

	// Use default detection
	return compat.DetectLevel(msg)
}
