// Package config handles global configuration for the validation tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/refmend/refmend/internal/resolve"
)

// GlobalConfig represents configuration stored in
// ~/.config/refmend/config.yml.
type GlobalConfig struct {
	ContactMail          string `yaml:"contact_mail,omitempty"`
	ProbeIntervalSeconds int    `yaml:"probe_interval_seconds,omitempty"`
	TimeoutSeconds       int    `yaml:"timeout_seconds,omitempty"`
	GoodCacheLimit       int    `yaml:"good_cache_limit,omitempty"`
	BadCacheLimit        int    `yaml:"bad_cache_limit,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "refmend"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/refmend/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file and applies
// environment overrides. Returns an empty config (not an error) if the
// file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	cfg := &GlobalConfig{}
	path := GlobalConfigPath()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing global config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	globalConfigCache = cfg
	return cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// Environment variable names. A .env file loaded by the commands can set
// these too.
const (
	EnvContactMail   = "REFMEND_CONTACT_MAIL"
	EnvProbeInterval = "REFMEND_PROBE_INTERVAL_SECONDS"
	EnvTimeout       = "REFMEND_TIMEOUT_SECONDS"
)

func applyEnvOverrides(cfg *GlobalConfig) {
	if v := os.Getenv(EnvContactMail); v != "" {
		cfg.ContactMail = v
	}
	if v := os.Getenv(EnvProbeInterval); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ProbeIntervalSeconds = n
		}
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		}
	}
}

// ProbeInterval returns the configured minimum spacing between resolver
// probes, falling back to the prober default.
func (c *GlobalConfig) ProbeInterval() time.Duration {
	if c.ProbeIntervalSeconds > 0 {
		return time.Duration(c.ProbeIntervalSeconds) * time.Second
	}
	return resolve.DefaultProbeInterval
}

// Timeout returns the configured probe timeout, falling back to the prober
// default.
func (c *GlobalConfig) Timeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return resolve.DefaultTimeout
}

// UserAgent returns the probe user agent, with the contact address folded
// in per resolver etiquette.
func (c *GlobalConfig) UserAgent() string {
	if c.ContactMail != "" {
		return resolve.DefaultUserAgent + " mailto:" + c.ContactMail
	}
	return resolve.DefaultUserAgent
}

// CacheLimits returns the configured cache bounds, falling back to the
// cache defaults.
func (c *GlobalConfig) CacheLimits() (good, bad int) {
	good, bad = resolve.DefaultGoodLimit, resolve.DefaultBadLimit
	if c.GoodCacheLimit > 0 {
		good = c.GoodCacheLimit
	}
	if c.BadCacheLimit > 0 {
		bad = c.BadCacheLimit
	}
	return good, bad
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
