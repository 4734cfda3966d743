package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetLogger restores the global logger after a test that rewires it.
func resetLogger(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})
}

func TestSetupLogging_OffDiscardsOutput(t *testing.T) {
	t.Chdir(t.TempDir())
	resetLogger(t)

	logFile := setupLogging(false)
	if logFile != nil {
		logFile.Close()
		t.Error("Expected nil log file when debug is off")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}

	// Nothing should touch the filesystem when logging is off
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug is off")
	}
}

func TestSetupLogging_WritesUnderLogDir(t *testing.T) {
	t.Chdir(t.TempDir())
	resetLogger(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug is on")
	}
	defer logFile.Close()

	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Log output must not reach the terminal streams")
	}

	log.Println("probe entry")

	content, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "probe entry") {
		t.Errorf("Expected log file to contain the written entry, got %q", content)
	}
}

func TestSetupLogging_AppendsAcrossRestarts(t *testing.T) {
	t.Chdir(t.TempDir())
	resetLogger(t)

	first := setupLogging(true)
	if first == nil {
		t.Fatal("Expected non-nil log file")
	}
	log.Println("first run")
	first.Close()

	second := setupLogging(true)
	if second == nil {
		t.Fatal("Expected non-nil log file on second setup")
	}
	defer second.Close()
	log.Println("second run")

	content, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	for _, want := range []string{"first run", "second run"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("Expected appended log to contain %q", want)
		}
	}
}

func TestSetupLogging_RotatesOversizeFile(t *testing.T) {
	t.Chdir(t.TempDir())
	resetLogger(t)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	oversize := make([]byte, maxLogSize+1)
	if err := os.WriteFile(logPath, oversize, 0644); err != nil {
		t.Fatalf("Failed to seed oversize log: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file after rotation")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	var rotated string
	for _, entry := range entries {
		name := entry.Name()
		if name != logFileName && strings.HasPrefix(name, "chaoscope-") && strings.HasSuffix(name, ".log") {
			rotated = name
			break
		}
	}
	if rotated == "" {
		t.Fatal("Expected a timestamped chaoscope-*.log sibling after rotation")
	}

	// The oversize payload moved wholesale into the rotated file
	info, err := os.Stat(filepath.Join(logDir, rotated))
	if err != nil {
		t.Fatalf("Failed to stat rotated file: %v", err)
	}
	if info.Size() != int64(len(oversize)) {
		t.Errorf("Expected rotated file to hold %d bytes, got %d", len(oversize), info.Size())
	}

	fresh, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if fresh.Size() > maxLogSize {
		t.Errorf("Expected fresh log file under %d bytes, got %d", maxLogSize, fresh.Size())
	}
}
