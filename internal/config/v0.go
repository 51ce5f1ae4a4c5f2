package config

import "github.com/zbiljic/commitlint/pkg/lint"

const configVersionV0 = "0"

// configV0 only selected the shared configurations to extend.
type configV0 struct {
	Version string   `json:"version"` // required by vconfig-go
	Extends []string `json:"extends,omitempty"`
}

// migrateV0 upgrades a v0 document, adding the project's default rules.
func (c *configV0) migrateV0() *configV1 {
	next := newConfigV1()
	if len(c.Extends) > 0 {
		next.Extends = append([]string(nil), c.Extends...)
	}
	next.Rules = cloneRules(lint.Default().Rules)
	return next
}
