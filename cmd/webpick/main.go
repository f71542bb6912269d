// Command webpick converts a single PNG into optimized web-delivery
// variants (quantized PNG, JPEG, WEBP, AVIF) by orchestrating external
// encoders, then prints HTML <picture> and CSS image-set() snippets that
// reference the generated files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pixelfold/webpick/internal/check"
	"github.com/pixelfold/webpick/internal/config"
	"github.com/pixelfold/webpick/internal/display"
	"github.com/pixelfold/webpick/internal/logging"
	"github.com/pixelfold/webpick/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
// When built with plain "go build", these retain their defaults.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version); err != nil {
		fmt.Fprintf(os.Stderr, "webpick: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "webpick: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "webpick: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available — all output goes through log from here on.
	display.PrintBanner()

	if cfg.CheckOnly {
		if !check.RunCheck(log) {
			return 1
		}
		return 0
	}

	log.Info("=== Webpick v%s (%s) ===", version, commit)
	log.Info("In: %s", cfg.InputPath)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be written")
	}
	log.Info("")

	// Fail fast if pngquant or cwebp are unavailable.
	tools := check.Resolve()
	if err := check.CheckDeps(tools); err != nil {
		log.Error("%v", err)
		return 1
	}

	// Phase 3: Signal handling — cancel context on SIGINT/SIGTERM so the
	// pipeline can stop between encoder invocations without leaving
	// partial output.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping after the current encoder…")
		cancel()
	}()

	// Phase 4: Run the conversion pipeline (validate → probe → plan → encode).
	stats := pipeline.Run(ctx, &cfg, tools, log)

	if stats.Failed > 0 {
		return 1
	}
	return 0
}
