package internal

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	originalLevel := logLevel
	defer SetLogLevel(originalLevel)

	SetLogLevel(LogLevelDebug)
	if logLevel != LogLevelDebug {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetLogLevel(LogLevelError)
	if logLevel != LogLevelError {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelError", logLevel)
	}
}

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer SetLogLevel(originalLevel)

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != DefaultLogLevel {
		t.Errorf("SetVerbose(false) logLevel = %v, want DefaultLogLevel", logLevel)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{"error", LogLevelError, false},
		{"WARN", LogLevelWarn, false},
		{"warning", LogLevelWarn, false},
		{"", LogLevelWarn, false},
		{" info ", LogLevelInfo, false},
		{"debug", LogLevelDebug, false},
		{"trace", DefaultLogLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogFunctionsRespectLevel(t *testing.T) {
	originalLevel := logLevel
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer func() {
		SetLogOutput(os.Stderr)
		SetLogLevel(originalLevel)
	}()

	SetLogLevel(LogLevelWarn)
	LogDebug("hidden debug message")
	LogInfo("hidden info message")
	LogWarn("visible warning message")
	LogError("visible error message")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("messages below the level should be dropped, got: %q", out)
	}
	if !strings.Contains(out, "visible warning message") || !strings.Contains(out, "visible error message") {
		t.Errorf("messages at or above the level should be written, got: %q", out)
	}

	buf.Reset()
	SetLogLevel(LogLevelDebug)
	LogDebug("debug now visible")
	if !strings.Contains(buf.String(), "debug now visible") {
		t.Errorf("debug message should be written at debug level, got: %q", buf.String())
	}
}

func TestLogLevels(t *testing.T) {
	if LogLevelError >= LogLevelWarn {
		t.Error("LogLevelError should be less than LogLevelWarn")
	}
	if LogLevelWarn >= LogLevelInfo {
		t.Error("LogLevelWarn should be less than LogLevelInfo")
	}
	if LogLevelInfo >= LogLevelDebug {
		t.Error("LogLevelInfo should be less than LogLevelDebug")
	}
}
