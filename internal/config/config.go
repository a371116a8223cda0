// Package config loads the nettriage configuration: internet test endpoints,
// DNS test domains, probe timeout, and logging settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/HerbHall/nettriage/internal/probe"
)

// Built-in defaults, applied whenever no configuration file exists or a
// loaded list comes back empty. An empty list falls back, it is not an error.
var (
	DefaultEndpoints = []string{
		"https://dns.google",
		"https://1.1.1.1",
		"https://httpbin.org/get",
	}
	DefaultDNSTestDomains = []string{
		"google.com",
		"cloudflare.com",
		"example.com",
		"apple.com",
	}
)

// Config is the runtime configuration for one diagnostic pass.
type Config struct {
	Endpoints      []string      `mapstructure:"endpoints"`
	DNSTestDomains []string      `mapstructure:"dnsTestDomains"`
	Probe          ProbeConfig   `mapstructure:"probe"`
	Logging        LoggingConfig `mapstructure:"logging"`
}

// ProbeConfig bounds the individual reachability probes.
type ProbeConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables. An explicit
// configPath must exist; otherwise the standard locations are searched and a
// missing file simply means defaults.
func Load(configPath string) (*Config, *viper.Viper, error) {
	v := viper.New()

	v.SetDefault("endpoints", DefaultEndpoints)
	v.SetDefault("dnsTestDomains", DefaultDNSTestDomains)
	v.SetDefault("probe.timeout", probe.DefaultTimeout)
	// Warn keeps a normal run's stderr clean; --verbose lowers this to debug.
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("nettriage")
		v.SetConfigType("json")
		for _, dir := range searchDirs() {
			v.AddConfigPath(dir)
		}
	}

	// Environment variable support: NT_LOGGING_LEVEL=debug
	v.SetEnvPrefix("NT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.Endpoints) == 0 {
		cfg.Endpoints = DefaultEndpoints
	}
	if len(cfg.DNSTestDomains) == 0 {
		cfg.DNSTestDomains = DefaultDNSTestDomains
	}
	if cfg.Probe.Timeout <= 0 {
		cfg.Probe.Timeout = probe.DefaultTimeout
	}

	return &cfg, v, nil
}

// searchDirs returns the lookup locations in precedence order:
// $XDG_CONFIG_HOME/nettriage, ~/.config/nettriage, /etc/nettriage, and the
// working directory.
func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "nettriage"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "nettriage"))
	}
	return append(dirs, "/etc/nettriage", ".")
}
