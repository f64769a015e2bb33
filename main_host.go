//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/haoyibits/Motor-Monitor/app"
	"github.com/haoyibits/Motor-Monitor/hal"
	"github.com/haoyibits/Motor-Monitor/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var showFPS, showVersion bool
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&showFPS, "fps", false, "Start with the FPS readout enabled.")
	flag.BoolVar(&showVersion, "version", false, "Print the version and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println("motor-monitor", buildinfo.Full())
		return
	}

	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, app.Config{ShowFPS: showFPS})
	}

	if cfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
