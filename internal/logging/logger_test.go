package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	config := &Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Log directory was not created")
	}

	logPath := logger.LogPath()
	if logPath == "" {
		t.Fatal("LogPath() returned empty string")
	}
	if !strings.HasPrefix(filepath.Base(logPath), "nullfill_") {
		t.Errorf("log file %q should start with nullfill_", filepath.Base(logPath))
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestNewWithEmptyDirUsesDefault(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)
	t.Setenv("HOME", cache)

	logger, err := New(&Config{Level: LevelInfo})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if !strings.HasPrefix(logger.LogPath(), DefaultDir()) {
		t.Errorf("LogPath() = %q, want under %q", logger.LogPath(), DefaultDir())
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	if logger == nil {
		t.Fatal("NewNoop() returned nil")
	}

	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")

	if logger.LogPath() != "" {
		t.Errorf("noop logger should have no path, got %q", logger.LogPath())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelInfo})

	logger.Debug("hidden")
	logger.Info("paste applied", "records", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered")
	}
	if !strings.Contains(out, "paste applied") || !strings.Contains(out, "records=4") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestLogLevels(t *testing.T) {
	logger, err := New(&Config{Level: LevelDebug, LogDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	for _, msg := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(contentStr, msg) {
			t.Errorf("Log file missing %q", msg)
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	logger, err := New(&Config{Level: LevelWarn, LogDir: t.TempDir()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if strings.Contains(contentStr, "debug message") {
		t.Error("Debug message should have been filtered")
	}
	if strings.Contains(contentStr, "info message") {
		t.Error("Info message should have been filtered")
	}
	if !strings.Contains(contentStr, "warn message") {
		t.Error("Warn message should be present")
	}
	if !strings.Contains(contentStr, "error message") {
		t.Error("Error message should be present")
	}
}

func TestJSONFormat(t *testing.T) {
	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir(), JSONFormat: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Info("test message", "key", "value")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	contentStr := string(content)
	if !strings.Contains(contentStr, `"msg"`) {
		t.Error("JSON format should contain 'msg' key")
	}
	if !strings.Contains(contentStr, `"key"`) {
		t.Error("JSON format should contain 'key' key")
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelInfo})

	logger.With("component", "clipboard").Info("read")

	if !strings.Contains(buf.String(), "component=clipboard") {
		t.Errorf("Log should contain component attribute, got %q", buf.String())
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelInfo})

	ctx := context.Background()
	ctx = WithOperation(ctx, "paste")
	ctx = WithGeneration(ctx, 3)

	logger.WithContext(ctx).Info("context message")

	out := buf.String()
	if !strings.Contains(out, "operation=paste") {
		t.Errorf("Log should contain operation from context, got %q", out)
	}
	if !strings.Contains(out, "generation=3") {
		t.Errorf("Log should contain generation from context, got %q", out)
	}
}

func TestWithContext_Empty(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelInfo})

	logger.WithContext(context.Background()).Info("plain")

	if strings.Contains(buf.String(), "operation=") {
		t.Errorf("unexpected operation attribute in %q", buf.String())
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	for i := 0; i < 15; i++ {
		name := filepath.Join(tmpDir, "nullfill_20240101_0000"+string(rune('a'+i))+".log")
		if err := os.WriteFile(name, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test log file: %v", err)
		}
	}
	// Files without the prefix are never touched.
	other := filepath.Join(tmpDir, "other.log")
	if err := os.WriteFile(other, []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}

	config := &Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 5,
	}

	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Close()

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "nullfill_") {
			count++
		}
	}

	if count > config.MaxLogFiles+1 {
		t.Errorf("Expected at most %d log files, got %d", config.MaxLogFiles+1, count)
	}
	if _, err := os.Stat(other); err != nil {
		t.Errorf("unrelated file removed: %v", err)
	}
}

func TestCleanup_MaxAge(t *testing.T) {
	tmpDir := t.TempDir()

	old := filepath.Join(tmpDir, "nullfill_20200101_000000.log")
	if err := os.WriteFile(old, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	logger, err := New(&Config{Level: LevelInfo, LogDir: tmpDir, MaxLogAge: 24 * time.Hour})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("expired log file should have been removed")
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Errorf("current log file missing: %v", err)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"", LevelInfo, false},
		{"info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"trace", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("DefaultConfig().Level = %v, want %v", config.Level, LevelInfo)
	}
	if filepath.Base(config.LogDir) != "logs" {
		t.Errorf("DefaultConfig().LogDir = %v, want a logs directory", config.LogDir)
	}
	if config.MaxLogFiles != 10 {
		t.Errorf("DefaultConfig().MaxLogFiles = %v, want %v", config.MaxLogFiles, 10)
	}
	if config.MaxLogAge != 7*24*time.Hour {
		t.Errorf("DefaultConfig().MaxLogAge = %v, want %v", config.MaxLogAge, 7*24*time.Hour)
	}
}

func TestConsoleOutput(t *testing.T) {
	logger, err := New(&Config{Level: LevelInfo, LogDir: t.TempDir(), Console: true})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer logger.Close()

	logger.Info("console test")
}
