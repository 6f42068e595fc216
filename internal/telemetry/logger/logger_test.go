package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// decode parses one JSON log line.
func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("parse JSON log %q: %v", buf.String(), err)
	}
	return entry
}

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string // substring of the record
	}{
		{"json", `"msg":"round started"`},
		{"", `"msg":"round started"`},
		{"text", `msg="round started"`},
		{"console", `msg="round started"`},
		{"TEXT", `msg="round started"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Level: "info", Format: tt.format, Output: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			l.Info("round started", "round", 1)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		level string
		log   func(string, ...any)
	}{
		{"DEBUG", l.Debug},
		{"INFO", l.Info},
		{"WARN", l.Warn},
		{"ERROR", l.Error},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.log("bad size", "final", 41)

			entry := decode(t, &buf)
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %s", entry["level"], tt.level)
			}
			if entry["msg"] != "bad size" {
				t.Errorf("msg = %v, want %q", entry["msg"], "bad size")
			}
			if entry["final"] != float64(41) {
				t.Errorf("final = %v, want 41", entry["final"])
			}
		})
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.With("set", "hoh").With("round", 2).Info("check passed")

	entry := decode(t, &buf)
	if entry["set"] != "hoh" || entry["round"] != float64(2) {
		t.Errorf("entry = %v, want set=hoh round=2", entry)
	}
}

func TestLogger_WithContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.WithContext(context.Background()).Info("check passed")
	if buf.Len() == 0 {
		t.Error("expected log output")
	}
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "warn", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Debug("worker progress")
	l.Info("round started")
	if buf.Len() > 0 {
		t.Errorf("debug/info logged at warn level: %q", buf.String())
	}
	l.Warn("bad length")
	if buf.Len() == 0 {
		t.Error("warn not logged at warn level")
	}

	buf.Reset()
	SetLevel("debug")
	l.Debug("worker progress")
	if buf.Len() == 0 {
		t.Error("debug not logged after SetLevel(debug)")
	}
	if got := GetLevel(); got != "debug" {
		t.Errorf("GetLevel() = %q, want debug", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"DEBUG", "debug"},
		{"info", "info"},
		{"warn", "warn"},
		{"warning", "warn"},
		{"Error", "error"},
		{"verbose", "info"},
		{"", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevel(tt.input)
			if got := GetLevel(); got != tt.want {
				t.Errorf("SetLevel(%q); GetLevel() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevel_Strict(t *testing.T) {
	if l, err := ParseLevel("WARNING"); err != nil || l != slog.LevelWarn {
		t.Errorf("ParseLevel(WARNING) = %v, %v; want WARN, nil", l, err)
	}
	if _, err := ParseLevel("verbose"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(verbose) error = %v, want ErrUnknownLevel", err)
	}
}

func TestNew_Rejects(t *testing.T) {
	SetLevel("info")
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"level", Config{Level: "loud"}, ErrUnknownLevel},
		{"format", Config{Format: "xml"}, ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if l != nil {
				t.Error("New() returned a logger with an error")
			}
		})
	}
	if got := GetLevel(); got != "info" {
		t.Errorf("failed New changed global level to %q", got)
	}
}

func TestDefaultAndPackageFunctions(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}

	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	prev := Default()
	SetDefault(l)
	t.Cleanup(func() { SetDefault(prev) })

	for name, log := range map[string]func(string, ...any){
		"Debug": Debug, "Info": Info, "Warn": Warn, "Error": Error,
	} {
		buf.Reset()
		log("sanity checks passed")
		if buf.Len() == 0 {
			t.Errorf("%s() produced no output", name)
		}
	}
}

func TestDiscard(t *testing.T) {
	SetLevel("info")
	l := Discard()
	l.Error("dropped", "k", "v")
	l.With("a", 1).WithContext(context.Background()).Info("dropped")
	if got := GetLevel(); got != "info" {
		t.Errorf("Discard changed global level to %q", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || cfg.Output == nil {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestLogger_DurationAttr(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	l.Info("round finished", "duration", 1500*time.Millisecond, "short", 1234567*time.Nanosecond)

	entry := decode(t, &buf)
	if entry["duration"] != "1.5s" {
		t.Errorf("duration = %v, want %q", entry["duration"], "1.5s")
	}
	if entry["short"] != "1.235ms" {
		t.Errorf("short = %v, want %q", entry["short"], "1.235ms")
	}
}
