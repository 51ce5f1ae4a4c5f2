package config

import (
	"fmt"

	"github.com/zbiljic/commitlint/pkg/lint"
)

const configVersionV1 = "1"

type configV1 struct {
	Version string                     `json:"version"` // required by vconfig-go
	Extends []string                   `json:"extends"`
	Rules   map[string]lint.RuleConfig `json:"rules"`
}

// newConfigV1 creates a new v1 configuration
func newConfigV1() *configV1 {
	def := lint.Default()

	return &configV1{
		Version: configVersionV1,
		Extends: def.Extends,
		Rules:   def.Rules,
	}
}

func (c *configV1) validateV1() error {
	if c.Version != configVersionV1 {
		return fmt.Errorf("unexpected version '%s'", c.Version)
	}

	if _, err := lint.Resolve(c.Lint()); err != nil {
		return err
	}

	return c.Lint().Validate()
}
