package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for cowsay
	EnvConfigDir = "COWSAY_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for cowsay
	EnvDataDir = "COWSAY_DATA_DIR"

	// EnvCowPath lists extra figure directories
	EnvCowPath = "COWPATH"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "cowsay"

	// CowsDirName is the figure subdirectory of the data directory
	CowsDirName = "cows"

	// LogFileName is the name of the log file
	LogFileName = "cowsay.log"
)

// ConfigFileNames are the accepted user config files, in lookup order.
var ConfigFileNames = []string{"config.toml", "config.yaml", "config.yml"}

// Paths gives access to every location cowsay reads from or writes to.
type Paths interface {
	ConfigDir() string
	ConfigFile() string
	DataDir() string
	StateDir() string
	LogFilePath() string
	CowDirs() []string
}

type paths struct {
	configDir string
	dataDir   string
	stateDir  string
	cowPath   []string
}

// New resolves all locations from the current environment.
func New() Paths {
	xdg.Reload()

	p := &paths{
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
		dataDir:   filepath.Join(xdg.DataHome, AppDirName),
		stateDir:  filepath.Join(xdg.StateHome, AppDirName),
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = expandHome(dir)
	}
	for _, dir := range filepath.SplitList(os.Getenv(EnvCowPath)) {
		if dir != "" {
			p.cowPath = append(p.cowPath, expandHome(dir))
		}
	}
	return p
}

func (p *paths) ConfigDir() string { return p.configDir }
func (p *paths) DataDir() string   { return p.dataDir }
func (p *paths) StateDir() string  { return p.stateDir }

// ConfigFile returns the first existing user config file, or "" if none.
func (p *paths) ConfigFile() string {
	for _, name := range ConfigFileNames {
		path := filepath.Join(p.configDir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LogFilePath returns the log file location inside the state directory.
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// CowDirs returns COWPATH entries followed by the data figure directory.
func (p *paths) CowDirs() []string {
	dirs := append([]string(nil), p.cowPath...)
	return append(dirs, filepath.Join(p.dataDir, CowsDirName))
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
