package log

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestZapLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected zapcore.Level
	}{
		{
			name:     "debug level",
			level:    LevelDebug,
			expected: zapcore.DebugLevel,
		},
		{
			name:     "info level",
			level:    LevelInfo,
			expected: zapcore.InfoLevel,
		},
		{
			name:     "warn level",
			level:    LevelWarn,
			expected: zapcore.WarnLevel,
		},
		{
			name:     "error level",
			level:    LevelError,
			expected: zapcore.ErrorLevel,
		},
		{
			name:     "unknown level falls back to info",
			level:    Level("verbose"),
			expected: zapcore.InfoLevel,
		},
		{
			name:     "empty level falls back to info",
			level:    Level(""),
			expected: zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zapLevel(tt.level); got != tt.expected {
				t.Errorf("zapLevel(%q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestInitAndGet(t *testing.T) {
	defer Reset()

	Init(LevelDebug)
	if Get() == nil {
		t.Fatal("Get() returned nil after Init")
	}
}

func TestGetWithoutInit(t *testing.T) {
	defer Reset()

	Reset()
	if Get() == nil {
		t.Fatal("Get() returned nil without Init")
	}
}

func TestPackageFunctions(t *testing.T) {
	defer Reset()

	Init(LevelDebug)

	// Must not panic.
	Debugf("debug %s", "message")
	Infof("info %s", "message")
	Warnf("warn %s", "message")
	Errorf("error %s", "message")

	if err := Sync(); err != nil {
		// Syncing stderr fails on some platforms, which is fine.
		t.Logf("Sync() returned %v", err)
	}
}
