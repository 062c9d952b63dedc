package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tagboard.log")

	logger, closeLog := setupLogging(false, path)
	defer closeLog()

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("Expected no-op logger when debug=false")
	}

	logger.Info("dropped")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no log file when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "tagboard.log")

	logger, closeLog := setupLogging(true, path)
	logger.Debug("state transition", zap.String("to", "Pending"))
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", line, err)
	}
	if entry["msg"] != "state transition" {
		t.Errorf("Expected message field, got %v", entry["msg"])
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("Expected DEBUG level, got %v", entry["level"])
	}
	if entry["to"] != "Pending" {
		t.Errorf("Expected typed field, got %v", entry["to"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("Expected timestamp key")
	}
}
