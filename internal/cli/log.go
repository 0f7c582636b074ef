// Package cli implements the gofluct command-line interface.
//
// # Commands
//
//   - analyze: superimpose the residues of a trajectory and save the deviations
//   - color: color the residues or atoms of a saved analysis
//   - plot: plot deviation series, colored profiles and step populations
//   - palettes: list the available palettes
//   - config: print the effective configuration
//
// All commands support --verbose (-v) for debug-level logging and --config
// to read settings from a TOML file. Flags override the file.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/rmera/gofluct/internal/config"
)

// newLogger creates a new logger with timestamp formatting.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "gofluct",
	})
}

// progress logs the completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, c config.Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext retrieves the configuration from ctx, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if c, ok := ctx.Value(configKey).(config.Config); ok {
		return c
	}
	return config.Default()
}
