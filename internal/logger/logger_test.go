package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// decodeLines parses one JSON object per output line
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for i, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Line %d is not valid JSON: %v", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     DEBUG,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "test",
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", nil)

	entries := decodeLines(t, &buf)
	if len(entries) != 4 {
		t.Fatalf("Expected 4 log lines, got %d", len(entries))
	}

	want := []string{"debug", "info", "warn", "error"}
	for i, entry := range entries {
		if entry["level"] != want[i] {
			t.Errorf("Line %d: expected level %s, got %v", i+1, want[i], entry["level"])
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     WARN,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "test",
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", nil)

	if entries := decodeLines(t, &buf); len(entries) != 2 {
		t.Errorf("Expected 2 log lines with WARN level, got %d", len(entries))
	}

	buf.Reset()
	logger.SetLevel(DEBUG)
	logger.Debug("now visible")
	if entries := decodeLines(t, &buf); len(entries) != 1 {
		t.Errorf("Expected debug line after SetLevel, got %d lines", len(entries))
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     INFO,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "test-component",
	})

	logger.Info("test message", map[string]interface{}{
		"key1": "value1",
		"key2": 42,
	})

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(entries))
	}
	entry := entries[0]

	if entry["message"] != "test message" {
		t.Errorf("Expected message 'test message', got %v", entry["message"])
	}
	if entry["component"] != "test-component" {
		t.Errorf("Expected component 'test-component', got %v", entry["component"])
	}
	if entry["key1"] != "value1" {
		t.Errorf("Expected field key1='value1', got %v", entry["key1"])
	}
	if entry["key2"] != float64(42) {
		t.Errorf("Expected field key2=42, got %v", entry["key2"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected a timestamp field")
	}
	if caller, _ := entry["caller"].(string); !strings.Contains(caller, "logger_test.go") {
		t.Errorf("Expected caller to point at the test file, got %v", entry["caller"])
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     INFO,
		Format:    TextFormat,
		Output:    &buf,
		Component: "test-component",
	})

	logger.Info("test message", map[string]interface{}{
		"key1": "value1",
	})

	output := buf.String()
	for _, want := range []string{"INF", "test message", "component=test-component", "key1=value1"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got %q", want, output)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	baseLogger := New(Config{
		Level:     INFO,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "base",
	})

	baseLogger.WithComponent("specific-component").Info("test message")

	entries := decodeLines(t, &buf)
	if len(entries) != 1 || entries[0]["component"] != "specific-component" {
		t.Errorf("Expected component 'specific-component', got %v", entries)
	}
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:  ERROR,
		Format: JSONFormat,
		Output: &buf,
	})

	logger.Error("operation failed", &testError{msg: "test error"}, map[string]interface{}{
		"operation": "test_op",
	})

	entries := decodeLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(entries))
	}
	if entries[0]["error"] != "test error" {
		t.Errorf("Expected error 'test error', got %v", entries[0]["error"])
	}
	if entries[0]["operation"] != "test_op" {
		t.Errorf("Expected operation field 'test_op', got %v", entries[0]["operation"])
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := GetGlobalLogger()
	defer SetGlobalLogger(originalLogger)

	SetGlobalLogger(New(Config{
		Level:     INFO,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "global-test",
	}))

	Debug("hidden")
	Info("global info message")
	Warn("global warn message")

	entries := decodeLines(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(entries))
	}
	if entries[0]["level"] != "info" || entries[0]["message"] != "global info message" {
		t.Errorf("First line incorrect: %v", entries[0])
	}
	if entries[1]["level"] != "warn" || entries[1]["message"] != "global warn message" {
		t.Errorf("Second line incorrect: %v", entries[1])
	}
}

func TestConfigure(t *testing.T) {
	originalLogger := GetGlobalLogger()
	defer SetGlobalLogger(originalLogger)

	var buf bytes.Buffer
	SetGlobalLogger(New(Config{Level: INFO, Format: JSONFormat, Output: &buf}))

	Configure("debug", "")
	if GetGlobalLogger().Level() != DEBUG {
		t.Errorf("Expected DEBUG level after Configure, got %v", GetGlobalLogger().Level())
	}

	Configure("nonsense", "nonsense")
	if GetGlobalLogger().Level() != DEBUG {
		t.Errorf("Expected unknown level to be ignored, got %v", GetGlobalLogger().Level())
	}
}

func TestFormattedLogging(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: &buf,
	})

	logger.Infof("Rendered %s in %d ms", "chart-trend", 12)

	entries := decodeLines(t, &buf)
	expected := "Rendered chart-trend in 12 ms"
	if len(entries) != 1 || entries[0]["message"] != expected {
		t.Errorf("Expected message '%s', got %v", expected, entries)
	}
}

func TestGlobalCallerPointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer

	originalLogger := GetGlobalLogger()
	defer SetGlobalLogger(originalLogger)

	SetGlobalLogger(New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: &buf,
	}))

	Info("plain")
	Infof("formatted %d", 1)
	Warnf("formatted %d", 2)
	Errorf("formatted %d", 3)

	entries := decodeLines(t, &buf)
	if len(entries) != 4 {
		t.Fatalf("Expected 4 log lines, got %d", len(entries))
	}
	for _, entry := range entries {
		if caller, _ := entry["caller"].(string); !strings.Contains(caller, "logger_test.go") {
			t.Errorf("Expected caller of %v to point at the test file, got %v", entry["message"], entry["caller"])
		}
	}
}

func TestParseSettings(t *testing.T) {
	levels := []struct {
		in   string
		want LogLevel
	}{
		{"DEBUG", DEBUG},
		{"debug", DEBUG},
		{"warning", WARN},
		{" error ", ERROR},
		{"", -1},
		{"verbose", -1},
	}
	for _, tt := range levels {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if parseLogFormat("JSON") != JSONFormat {
		t.Error("Expected JSONFormat for uppercase 'JSON'")
	}
	if parseLogFormat("text") != TextFormat {
		t.Error("Expected TextFormat for 'text'")
	}
	// tests never run with a terminal on stdout
	if got := parseLogFormat("auto"); got != JSONFormat && got != TextFormat {
		t.Errorf("Expected auto to resolve to a concrete format, got %v", got)
	}
	if parseLogFormat("xml") != -1 {
		t.Error("Expected -1 for unknown format")
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
	}

	for _, test := range tests {
		if test.level.String() != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, test.level.String())
		}
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func BenchmarkJSONLogging(b *testing.B) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: &buf,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", map[string]interface{}{
			"iteration": i,
			"benchmark": true,
		})
	}
}

func BenchmarkLevelFiltering(b *testing.B) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  WARN,
		Format: JSONFormat,
		Output: &buf,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("debug message that should be filtered")
	}
}
