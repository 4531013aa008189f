// Package paths provides centralized path handling for cowsay.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/cowsay (config.toml, config.yaml or config.yml)
//   - Data: $XDG_DATA_HOME/cowsay/cows (user figure templates)
//   - State: $XDG_STATE_HOME/cowsay (log file)
//
// # Environment Variables
//
//   - COWSAY_CONFIG_DIR: override the config directory
//   - COWSAY_DATA_DIR: override the data directory
//   - COWPATH: list of extra figure directories, separated like PATH.
//     These are searched before the data directory.
package paths
