package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUseFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Use(&buf, slog.LevelWarn)
	defer Use(&bytes.Buffer{}, slog.LevelError)

	Debugf("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %s", out)
	}
	if !strings.Contains(out, "shown 2") || !strings.Contains(out, "component=airline-dash") {
		t.Fatalf("warn record missing: %s", out)
	}
	if IsDebugMode() {
		t.Fatalf("warn level is not debug mode")
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	if err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	Infof("hello %s", "file")
	cleanup()
	defer SetupLogging("")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file missing record: %s", data)
	}
}

func TestSetupLoggingDisabled(t *testing.T) {
	cleanup, err := SetupLogging("")
	if err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	defer cleanup()
	if IsDebugMode() {
		t.Fatalf("debug mode should be off")
	}
}
