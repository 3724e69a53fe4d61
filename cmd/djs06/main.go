// Command djs06 runs the collection walkthrough over the built-in fixtures and
// prints one line per example to stdout.
//
// Settings come from the environment; see package config.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/config"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/logger"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/report"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	base, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer base.Sync()
	log := base.With("run_id", uuid.NewString())

	log.Info("walkthrough_starting",
		"format", cfg.Format,
		"max_name_len", cfg.MaxNameLen,
		"extremes_mode", string(cfg.ExtremesMode),
	)

	entries := report.Run(report.DefaultFixtures(), report.Options{
		MaxNameLen:   cfg.MaxNameLen,
		ExtremesMode: cfg.ExtremesMode,
	})

	w := bufio.NewWriter(os.Stdout)
	if err := report.Render(w, entries, cfg.Format); err != nil {
		log.Error("render_failed", "error", err)
		return 1
	}
	if err := w.Flush(); err != nil {
		log.Error("stdout_flush_failed", "error", err)
		return 1
	}

	log.Info("walkthrough_complete", "entries", len(entries), "fingerprint", report.Fingerprint(entries))
	return 0
}
