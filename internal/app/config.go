package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap/zapcore"
)

// Constants
const (
	DefaultAuthFile = "auth.secret"
	DefaultLogLevel = "info"
	AuthFileMode    = 0400

	// Level used when the console owns the terminal and no log file is set
	TerminalLogLevel = "warn"

	// Environment variables
	EnvAuthFile = "AUTH_FILE"
	EnvLogLevel = "EVENT_MANAGER_LOG_LEVEL"

	// Fallback shown for a performance nobody registered
	UnknownPerformer = "Unknown"

	MinRating = 1
	MaxRating = 5
)

// Config holds the runtime settings of the event manager
type Config struct {
	// AuthFile is the principal credentials file. Empty means "next to the binary".
	AuthFile string
	// LogLevel is a zap level name. Empty means DefaultLogLevel.
	LogLevel string
	// LogFile receives log output. Empty means stderr.
	LogFile string
}

// DefaultConfig returns a Config populated from the environment
func DefaultConfig() Config {
	return Config{
		AuthFile: os.Getenv(EnvAuthFile),
		LogLevel: os.Getenv(EnvLogLevel),
	}
}

// ForTerminal returns the configuration used while the console runs on a
// terminal. Without a log file, log lines share the screen with the menus,
// so an unset level becomes TerminalLogLevel.
func (c Config) ForTerminal() Config {
	if c.LogLevel == "" && c.LogFile == "" {
		c.LogLevel = TerminalLogLevel
	}
	return c
}

// ResolveAuthFile returns the auth file path, defaulting to auth.secret in
// the same directory as the executable
func (c Config) ResolveAuthFile() (string, error) {
	if c.AuthFile != "" {
		return c.AuthFile, nil
	}
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	return filepath.Join(filepath.Dir(execPath), DefaultAuthFile), nil
}

// Level parses the configured log level
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.ParseLevel(DefaultLogLevel)
	}
	return zapcore.ParseLevel(c.LogLevel)
}

// Validate reports every problem with the configuration at once
func (c Config) Validate() error {
	var result *multierror.Error

	if _, err := c.Level(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err))
	}

	if c.AuthFile != "" {
		if info, err := os.Stat(c.AuthFile); err == nil && info.IsDir() {
			result = multierror.Append(result, fmt.Errorf("auth file %s is a directory", c.AuthFile))
		}
	}

	if c.LogFile != "" {
		dir := filepath.Dir(c.LogFile)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			result = multierror.Append(result, fmt.Errorf("log file directory %s does not exist", dir))
		}
	}

	return result.ErrorOrNil()
}
