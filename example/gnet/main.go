// FILE: example/gnet/main.go
package main

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/buflog"
	"github.com/lixenwraith/buflog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	cfg := buflog.DefaultConfig()
	if err := cfg.ApplyOverride(
		"directory=./gnet_logs",
		"flush_threshold_bytes=4096",
		"sanitize=txt",
	); err != nil {
		panic(err)
	}
	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		panic(err)
	}

	builder := compat.NewBuilder().
		WithConfig(cfg).
		WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "log flush failed: %v\n", err)
		})

	gnetAdapter, err := builder.BuildGnet()
	if err != nil {
		panic(err)
	}
	shared, _ := builder.GetSynced()
	defer shared.Close()

	// Configure gnet server with the logger
	err = gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
