package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfigureDefault(t *testing.T) {
	// Just ensure Configure doesn't panic
	Configure(Options{})

	logger := Logger()
	if logger == nil {
		t.Error("Logger should not be nil after Configure")
	}
}

func TestConfigureWithOutput(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{
		Output: &buf,
		Level:  LevelInfo,
	})

	Info("test message")

	if buf.Len() == 0 {
		t.Error("expected log output")
	}
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("log output = %q, want to contain %q", buf.String(), "test message")
	}
}

func TestConfigureJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{
		Output: &buf,
		JSON:   true,
		Level:  LevelInfo,
	})

	Info("json test")

	if !strings.Contains(buf.String(), "{") {
		t.Error("expected JSON output")
	}
}

func TestConfigureVerbose(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{
		Output:  &buf,
		Verbose: true, // Should enable debug level
	})

	Debug("debug message")

	if !strings.Contains(buf.String(), "debug message") {
		t.Error("debug should be visible with Verbose=true")
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{
		Output: &buf,
		Level:  LevelInfo,
	})

	Debug("hidden")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug should be suppressed at info level")
	}
}

func TestErrAttr(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{
		Output: &buf,
		Level:  LevelInfo,
	})

	Error("failed", Err(errors.New("boom")))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("log output = %q, want to contain the error", buf.String())
	}
}

func TestRepoAttr(t *testing.T) {
	attr := Repo("valksor", "go-relwatch")

	if attr.Key != "repo" {
		t.Errorf("Key = %q, want repo", attr.Key)
	}
	if attr.Value.String() != "valksor/go-relwatch" {
		t.Errorf("Value = %q, want valksor/go-relwatch", attr.Value.String())
	}
}
