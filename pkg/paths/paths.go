package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/deeplink/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for deeplink
	EnvConfigDir = "DEEPLINK_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for deeplink
	EnvStateDir = "DEEPLINK_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for deeplink-specific files
	AppDirName = "deeplink"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "deeplink.log"
)

// Paths holds the resolved directories.
type Paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment. XDG variables are
// re-read on every call so that changes made after start-up are honoured.
func New() (*Paths, error) {
	xdg.Reload()

	p := &Paths{}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if dir := os.Getenv(EnvStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ConfigDir returns the configuration directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path of the user configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateDir returns the state directory.
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFile returns the path of the log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
