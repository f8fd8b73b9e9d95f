// Package config handles configuration management for deeplink.
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file ($XDG_CONFIG_HOME/deeplink/config.toml or an explicit path)
//  3. a .env file in the working directory, loaded into the environment
//  4. DEEPLINK_* environment variables (DEEPLINK_PROFILES_KNOWN -> profiles.known)
//  5. overrides supplied by the caller, usually command-line flags
package config
