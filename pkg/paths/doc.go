// Package paths resolves where deeplink keeps its files.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/deeplink/config.toml
//   - State:  $XDG_STATE_HOME/deeplink/deeplink.log
//
// # Environment Variables
//
//   - DEEPLINK_CONFIG_DIR: override the config directory
//   - DEEPLINK_STATE_DIR: override the state directory
package paths
