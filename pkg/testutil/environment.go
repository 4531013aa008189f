package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/cowsay/pkg/cows"
	"github.com/arthur-debert/cowsay/pkg/paths"
)

// TestEnvironment is an isolated set of cowsay directories
type TestEnvironment struct {
	Root      string
	ConfigDir string
	DataDir   string
	StateDir  string
	// CowPath is a directory listed on COWPATH
	CowPath string

	t *testing.T
}

// NewTestEnvironment creates the directories and points the environment at
// them. Colors are disabled so output can be compared byte for byte.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:    root,
		CowPath: filepath.Join(root, "cowpath"),
		t:       t,
	}

	configHome := filepath.Join(root, "config")
	dataHome := filepath.Join(root, "data")
	stateHome := filepath.Join(root, "state")
	env.ConfigDir = filepath.Join(configHome, paths.AppDirName)
	env.DataDir = filepath.Join(dataHome, paths.AppDirName)
	env.StateDir = filepath.Join(stateHome, paths.AppDirName)

	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv(paths.EnvCowPath, env.CowPath)
	t.Setenv("NO_COLOR", "1")

	for _, dir := range []string{env.ConfigDir, env.DataDir, env.CowPath} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	return env
}

// Paths resolves cowsay's locations from the environment
func (env *TestEnvironment) Paths() paths.Paths {
	return paths.New()
}

// WriteCow writes name.cow into the COWPATH directory and returns its path
func (env *TestEnvironment) WriteCow(name, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.CowPath, name+cows.Extension), content)
}

// WriteDataCow writes name.cow into the user data figure directory
func (env *TestEnvironment) WriteDataCow(name, content string) string {
	env.t.Helper()
	dir := filepath.Join(env.DataDir, paths.CowsDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		env.t.Fatalf("failed to create %s: %v", dir, err)
	}
	return env.writeFile(filepath.Join(dir, name+cows.Extension), content)
}

// WriteConfig writes the user config file; filename picks the format
func (env *TestEnvironment) WriteConfig(filename, content string) string {
	env.t.Helper()
	return env.writeFile(filepath.Join(env.ConfigDir, filename), content)
}

func (env *TestEnvironment) writeFile(path, content string) string {
	env.t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		env.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
