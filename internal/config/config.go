package config

import (
	"fmt"

	"github.com/zbiljic/commitlint/pkg/lint"
)

// Config represents the current version of configuration
type Config = configV1

// NewDefault creates a new configuration holding the project's rules
func NewDefault() *Config {
	return newConfigV1()
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validateV1()
}

// Lint returns the linter configuration described by the file.
func (c *Config) Lint() lint.Configuration {
	return lint.Configuration{
		Extends: append([]string(nil), c.Extends...),
		Rules:   cloneRules(c.Rules),
	}
}

// FromLint creates a configuration file document from a linter
// configuration.
func FromLint(cfg lint.Configuration) *Config {
	c := newConfigV1()
	c.Extends = append([]string(nil), cfg.Extends...)
	c.Rules = cloneRules(cfg.Rules)
	return c
}

func cloneRules(rules map[string]lint.RuleConfig) map[string]lint.RuleConfig {
	out := make(map[string]lint.RuleConfig, len(rules))
	for name, r := range rules {
		out[name] = r
	}
	return out
}

// Describe returns a short human readable summary of the configuration.
func (c *Config) Describe() string {
	return fmt.Sprintf("version %s, extends %v, %d rule(s)", c.Version, c.Extends, len(c.Rules))
}
