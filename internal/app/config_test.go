package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvAuthFile, "/etc/event-manager/auth.secret")
	t.Setenv(EnvLogLevel, "")

	cfg := DefaultConfig()
	if cfg.AuthFile != "/etc/event-manager/auth.secret" {
		t.Errorf("AuthFile = %s, want value from %s", cfg.AuthFile, EnvAuthFile)
	}
	if cfg.LogLevel != "" {
		t.Errorf("LogLevel = %s, want it unset", cfg.LogLevel)
	}
	if level, err := cfg.Level(); err != nil || level != zapcore.InfoLevel {
		t.Errorf("Level() = (%v, %v), want info", level, err)
	}

	path, err := cfg.ResolveAuthFile()
	if err != nil || path != cfg.AuthFile {
		t.Errorf("ResolveAuthFile() = (%s, %v), want the configured path", path, err)
	}
}

func TestResolveAuthFileDefault(t *testing.T) {
	path, err := Config{}.ResolveAuthFile()
	if err != nil {
		t.Fatalf("ResolveAuthFile() failed: %v", err)
	}
	if filepath.Base(path) != DefaultAuthFile {
		t.Errorf("ResolveAuthFile() = %s, want a path ending in %s", path, DefaultAuthFile)
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		cfg      Config
		wantErrs []string
	}{
		{
			name: "Valid",
			cfg:  Config{LogLevel: "debug", LogFile: filepath.Join(dir, "events.log")},
		},
		{
			name:     "Bad level",
			cfg:      Config{LogLevel: "chatty"},
			wantErrs: []string{"invalid log level"},
		},
		{
			name:     "Auth file is a directory",
			cfg:      Config{LogLevel: "info", AuthFile: dir},
			wantErrs: []string{"is a directory"},
		},
		{
			name: "Several problems",
			cfg: Config{
				LogLevel: "chatty",
				LogFile:  filepath.Join(dir, "missing", "events.log"),
			},
			wantErrs: []string{"invalid log level", "does not exist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if len(tt.wantErrs) == 0 {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() error = nil, want errors")
			}
			for _, want := range tt.wantErrs {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Validate() error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "events.log")

	logger, err := NewLogger(Config{LogLevel: "warn", LogFile: logFile})
	if err != nil {
		t.Fatalf("NewLogger() failed: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}

	logger.Warn("stage lights missing")
	_ = logger.Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "stage lights missing") {
		t.Errorf("log file does not contain the message: %q", content)
	}

	if _, err := NewLogger(Config{LogLevel: "chatty"}); err == nil {
		t.Error("NewLogger() with a bad level should fail")
	}
}

func TestForTerminal(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "Unset level", cfg: Config{}, want: TerminalLogLevel},
		{name: "Explicit level", cfg: Config{LogLevel: "debug"}, want: "debug"},
		{name: "Log file", cfg: Config{LogFile: "/var/log/events.log"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ForTerminal().LogLevel; got != tt.want {
				t.Errorf("ForTerminal().LogLevel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewWriterLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := NewWriterLogger(Config{}.ForTerminal(), &out)
	if err != nil {
		t.Fatalf("NewWriterLogger() failed: %v", err)
	}

	logger.Info("request approved")
	logger.Warn("failed principal sign-off")
	_ = logger.Sync()

	if strings.Contains(out.String(), "request approved") {
		t.Errorf("info entry written at the terminal level: %q", out.String())
	}
	if !strings.Contains(out.String(), "WARN\tfailed principal sign-off") {
		t.Errorf("warn entry missing: %q", out.String())
	}
}
