// Package paths resolves the config file and database locations for a
// chronicler session.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative database default.
const DefaultDatabaseName = "chronicles.json"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "CHRONICLER_CONFIG_DIR"
	EnvDatabase  = "CHRONICLER_DATABASE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/chronicler (fallback ~/.config/chronicler)
// macOS:   ~/Library/Application Support/chronicler
// Windows: %APPDATA%/chronicler
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "chronicler"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "chronicler"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "chronicler"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > CHRONICLER_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDatabase returns the database location following the precedence
// chain: flag > config file value > CHRONICLER_DATABASE env > CWD default.
//
// The CWD-relative default ($(CWD)/chronicles.json) keeps a bare invocation
// working against the database next to the working directory.
func ResolveDatabase(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDatabase); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDatabaseName), nil
}
