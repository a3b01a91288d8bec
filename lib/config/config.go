// Copyright 2026 The Simdash Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads dashboard configuration.
//
// Configuration comes from a single optional YAML file named by the
// SIMDASH_CONFIG environment variable or the --config flag. With no
// file, the built-in defaults apply. String values may use ${VAR} and
// ${VAR:-default} expansion; the default listen endpoint is
// "127.0.0.1:${SIMDASH_PORT:-5010}", so the listen port is overridable
// through that variable without any file at all. A --listen flag, when
// the command offers one, overrides everything.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the config file. EnvListenPort overrides the
// default listen port via expansion of the default endpoint.
const (
	EnvConfigFile = "SIMDASH_CONFIG"
	EnvListenPort = "SIMDASH_PORT"
)

const (
	defaultListen                 = "127.0.0.1:${SIMDASH_PORT:-5010}"
	defaultTickMilliseconds       = 100
	defaultHistorySamples         = 300
	defaultStaleAfterMilliseconds = 3000
)

// Config is the dashboard configuration.
type Config struct {
	// Listen is the UDP endpoint the exporter sends to, host:port.
	Listen string `yaml:"listen"`

	// TickMilliseconds is the render period. The render loop runs at
	// this fixed cadence regardless of telemetry arrival.
	TickMilliseconds int `yaml:"tick_ms"`

	// HistorySamples is the capacity of each graphed-signal history
	// buffer. A tuning constant: it bounds both memory and the width
	// of data behind the sparklines.
	HistorySamples int `yaml:"history_samples"`

	// StaleAfterMilliseconds is how long a snapshot group may go
	// without an accepted sample before its panel is marked stale.
	StaleAfterMilliseconds int `yaml:"stale_after_ms"`

	// LogFile, when set, receives JSON diagnostics while the
	// dashboard owns the terminal. Empty means diagnostics are
	// discarded during the session.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration, unexpanded.
func Default() *Config {
	return &Config{
		Listen:                 defaultListen,
		TickMilliseconds:       defaultTickMilliseconds,
		HistorySamples:         defaultHistorySamples,
		StaleAfterMilliseconds: defaultStaleAfterMilliseconds,
	}
}

// Load loads configuration from the file named by SIMDASH_CONFIG, or
// returns the expanded defaults when the variable is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		cfg := Default()
		cfg.expandVariables()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, merging over the defaults,
// then expands variables and validates.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.expandVariables()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Tick returns the render period.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.TickMilliseconds) * time.Millisecond
}

// StaleAfter returns the staleness threshold.
func (c *Config) StaleAfter() time.Duration {
	return time.Duration(c.StaleAfterMilliseconds) * time.Millisecond
}

// Validate checks the configuration, collecting every problem rather
// than stopping at the first.
func (c *Config) Validate() error {
	var errs []error

	host, port, err := net.SplitHostPort(c.Listen)
	if err != nil {
		errs = append(errs, fmt.Errorf("listen %q is not host:port: %w", c.Listen, err))
	} else {
		if host == "" {
			errs = append(errs, fmt.Errorf("listen %q has no host", c.Listen))
		}
		if number, err := strconv.Atoi(port); err != nil || number < 1 || number > 65535 {
			errs = append(errs, fmt.Errorf("listen port %q must be a number in 1-65535", port))
		}
	}

	if c.TickMilliseconds < 10 || c.TickMilliseconds > 1000 {
		errs = append(errs, fmt.Errorf("tick_ms %d out of range 10-1000", c.TickMilliseconds))
	}
	if c.HistorySamples < 2 || c.HistorySamples > 100000 {
		errs = append(errs, fmt.Errorf("history_samples %d out of range 2-100000", c.HistorySamples))
	}
	if c.StaleAfterMilliseconds < c.TickMilliseconds {
		errs = append(errs, fmt.Errorf("stale_after_ms %d must be at least tick_ms %d",
			c.StaleAfterMilliseconds, c.TickMilliseconds))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVariables expands environment references in the string-valued
// settings. Unset variables expand to the written default, or to the
// empty string when none is given.
func (c *Config) expandVariables() {
	c.Listen = expandVars(c.Listen)
	c.LogFile = expandVars(c.LogFile)
}

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		if len(parts) >= 3 {
			return parts[2]
		}
		return ""
	})
}
