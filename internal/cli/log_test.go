package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/rmera/gofluct/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Analyzed")
	if !strings.Contains(buf.String(), "Analyzed") {
		t.Errorf("progress message missing: %q", buf.String())
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if loggerFromContext(ctx) != log.Default() {
		t.Error("expected the default logger for an empty context")
	}
	if got := configFromContext(ctx); got.Outline.Palette != config.Default().Outline.Palette {
		t.Errorf("expected the default config, got %+v", got)
	}

	l := newLogger(&bytes.Buffer{}, log.WarnLevel)
	cfg := config.Default()
	cfg.Outline.Size = 7
	ctx = withConfig(withLogger(ctx, l), cfg)
	if loggerFromContext(ctx) != l {
		t.Error("logger not stored in context")
	}
	if configFromContext(ctx).Outline.Size != 7 {
		t.Error("config not stored in context")
	}
}
