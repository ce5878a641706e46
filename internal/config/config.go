package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/open-agents/svcctl/internal/service"
)

// Options holds the settings shared by every sub-command. They come from
// command-line flags only; svcctl reads no config file or environment.
type Options struct {
	User    bool
	LogDir  string
	Verbose bool
}

// Level maps --user to the service domain requests target.
func (o Options) Level() service.Level {
	if o.User {
		return service.LevelUser
	}
	return service.LevelSystem
}

// Validate rejects option values no sub-command can use.
func (o Options) Validate() error {
	if o.LogDir != "" && !filepath.IsAbs(o.LogDir) {
		return fmt.Errorf("log directory must be an absolute path: %s", o.LogDir)
	}
	return nil
}

// DefaultLogDir is the conventional per-OS location for svcctl audit logs.
func DefaultLogDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "svcctl", "logs")
	case "darwin":
		return filepath.Join(os.Getenv("HOME"), "Library", "Logs", "svcctl")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".svcctl", "logs")
	}
}
