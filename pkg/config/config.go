package config

import (
	"regexp"

	"github.com/arthur-debert/deeplink/pkg/errors"
)

// Config is the resolved deeplink configuration.
type Config struct {
	Scheme   string         `koanf:"scheme"`
	Profiles ProfilesConfig `koanf:"profiles"`
	Output   OutputConfig   `koanf:"output"`
	Log      LogConfig      `koanf:"log"`
}

// ProfilesConfig describes the profiles links may reference.
type ProfilesConfig struct {
	Known   []string `koanf:"known"`
	Default string   `koanf:"default"`
	Suggest bool     `koanf:"suggest"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `koanf:"format"`
	Plain  bool   `koanf:"plain"`
}

// LogConfig controls file logging.
type LogConfig struct {
	File bool `koanf:"file"`
}

// schemes per RFC 3986, restricted to lower case
var schemePattern = regexp.MustCompile(`^[a-z][a-z0-9+.-]*$`)

// Validate checks values that cannot be fixed up silently.
func (c *Config) Validate() error {
	if !schemePattern.MatchString(c.Scheme) {
		return errors.Newf(errors.ErrConfigValid, "invalid scheme %q", c.Scheme).
			WithDetail("scheme", c.Scheme)
	}
	for _, p := range c.Profiles.Known {
		if p == "" {
			return errors.New(errors.ErrConfigValid, "profiles.known contains an empty name")
		}
	}
	return nil
}

// KnownProfiles returns the known profiles followed by extra, without duplicates.
func (c *Config) KnownProfiles(extra ...string) []string {
	seen := make(map[string]bool, len(c.Profiles.Known)+len(extra))
	var out []string
	for _, list := range [][]string{c.Profiles.Known, extra} {
		for _, p := range list {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
