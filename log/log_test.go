package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf)

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.Format())
	}

	logger.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at default level, got %q", buf.String())
	}

	logger.Warn("shown")

	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn message, got %q", buf.String())
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	logger.Error("nothing happens")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level for zero logger")
	}

	if got := logger.With(slog.String("k", "v")); got.Logger != nil {
		t.Error("expected With on zero logger to stay zero")
	}
}

func TestLogger_LogMethods_RespectLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func(Logger, string, ...slog.Attr)
		minLevel Level
		logged   bool
	}{
		{"trace at trace", (Logger).Trace, LevelTrace, true},
		{"trace at debug", (Logger).Trace, LevelDebug, false},
		{"debug at debug", (Logger).Debug, LevelDebug, true},
		{"debug at info", (Logger).Debug, LevelInfo, false},
		{"info at info", (Logger).Info, LevelInfo, true},
		{"info at warn", (Logger).Info, LevelWarn, false},
		{"warn at warn", (Logger).Warn, LevelWarn, true},
		{"warn at error", (Logger).Warn, LevelError, false},
		{"error at error", (Logger).Error, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.logFunc(Make(&buf, WithLevel(tt.minLevel)), "test message")

			if hasOutput := buf.Len() > 0; hasOutput != tt.logged {
				t.Errorf("expected logged=%v, got output %q", tt.logged, buf.String())
			}
		})
	}
}

func TestLogger_JSON_WritesAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelTrace))
	logger.Trace("loaded", slog.String("file", ".env"), slog.Int("count", 3))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output %q: %v", buf.String(), err)
	}

	if result["msg"] != "loaded" || result["file"] != ".env" || result["count"] != float64(3) {
		t.Errorf("unexpected record: %v", result)
	}

	if result["level"] != "TRACE" {
		t.Errorf("expected level TRACE, got %v", result["level"])
	}
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithFormat(FormatJSON)).Warn("here")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller to point at this file, got %q", buf.String())
	}
}

func TestLogger_WithTimeLayoutNone_OmitsTime(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithTimeLayout("none")).Warn("untimed")

	if strings.Contains(buf.String(), "time=") {
		t.Errorf("expected no timestamp, got %q", buf.String())
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf).With(slog.String("component", "launch"))
	logger.Warn("first")
	logger.Warn("second")

	if n := strings.Count(buf.String(), "component=launch"); n != 2 {
		t.Errorf("expected attribute on both lines, got %d in %q", n, buf.String())
	}
}

func TestLogger_Wrap_OverridesConfiguration(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf)
	wrapped := base.Wrap(WithLevel(LevelDebug))

	if base.Level() != DefaultLevel {
		t.Errorf("Wrap modified the original logger level")
	}

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected wrapped logger to log debug, got %q", buf.String())
	}
}

func TestLogger_Pretty_ColorsText(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithPretty(true), WithTimeLayout(""))
	logger.With(slog.String("component", "cli")).
		Warn("pretty", slog.Bool("ok", true), slog.Group("child", slog.Int("pid", 42)))

	out := buf.String()

	for _, want := range []string{
		colorYellow + "WARN",
		"msg" + colorReset + "=" + colorCyan + "pretty",
		"component" + colorReset + "=" + colorCyan + "cli",
		colorGreen + "true",
		"child.pid" + colorReset + "=" + colorYellow + "42",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestLogger_ConcurrentCalls_ThreadSafe(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo))

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()

			logger.Info("concurrent message", slog.Int("id", id))
		}(i)
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 log lines, got %d", len(lines))
	}
}
