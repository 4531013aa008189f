// Package testutil provides utilities for testing cowsay components.
//
// TestEnvironment points every location cowsay reads from (XDG config,
// data and state homes, COWPATH) at a fresh temp directory and restores the
// process environment when the test ends. Figures and config files are
// defined inline with WriteCow and WriteConfig.
package testutil
