package xdg

import (
	"os"
	"path/filepath"
)

// Dirs resolves XDG Base Directory Specification paths for one application.
type Dirs struct {
	appName    string
	configHome string
	stateHome  string
	cacheHome  string
}

// New creates a Dirs instance for the given application name with the
// defaults the XDG spec prescribes when the variables are unset.
func New(appName string) *Dirs {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			homeDir = "/tmp"
		}
	}

	d := &Dirs{appName: appName}

	d.configHome = os.Getenv("XDG_CONFIG_HOME")
	if d.configHome == "" {
		d.configHome = filepath.Join(homeDir, ".config")
	}

	d.stateHome = os.Getenv("XDG_STATE_HOME")
	if d.stateHome == "" {
		d.stateHome = filepath.Join(homeDir, ".local", "state")
	}

	d.cacheHome = os.Getenv("XDG_CACHE_HOME")
	if d.cacheHome == "" {
		d.cacheHome = filepath.Join(homeDir, ".cache")
	}

	return d
}

// ConfigDir returns the application-specific config directory
func (d *Dirs) ConfigDir() string {
	return filepath.Join(d.configHome, d.appName)
}

// StateDir returns the application-specific state directory
func (d *Dirs) StateDir() string {
	return filepath.Join(d.stateHome, d.appName)
}

// CacheDir returns the application-specific cache directory
func (d *Dirs) CacheDir() string {
	return filepath.Join(d.cacheHome, d.appName)
}

// EnsureDir creates the directory if it doesn't exist. Session state may
// contain a live cookie, so everything is user-only.
func (d *Dirs) EnsureDir(path string) error {
	return os.MkdirAll(path, 0700)
}
