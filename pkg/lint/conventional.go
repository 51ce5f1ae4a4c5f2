package lint

import (
	"sort"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"

	"github.com/zbiljic/commitlint/pkg/commit"
)

// ConventionalConfigName is the canonical name of the conventional commits
// shared configuration.
const ConventionalConfigName = "config-conventional"

// sharedConfigPrefix is stripped from extends names so that configurations
// written for the npm packages resolve to the built-in rule sets.
const sharedConfigPrefix = "@commitlint/"

/**
 * References:
 * https://github.com/conventional-changelog/commitlint/blob/master/%40commitlint/config-conventional/src/index.ts
 */
func conventionalConfig() Configuration {
	types := maputil.Keys(commit.ConventionalCommitTypes)
	sort.Strings(types)

	return Configuration{
		Rules: map[string]RuleConfig{
			"body-leading-blank":     {Level: SeverityWarning, Condition: Always},
			"body-max-line-length":   {Level: SeverityError, Condition: Always, Value: commit.DefaultMaxLineLength},
			"footer-leading-blank":   {Level: SeverityWarning, Condition: Always},
			"footer-max-line-length": {Level: SeverityError, Condition: Always, Value: commit.DefaultMaxLineLength},
			"header-max-length":      {Level: SeverityError, Condition: Always, Value: commit.DefaultMaxHeaderLength},
			"header-trim":            {Level: SeverityError, Condition: Always},
			"subject-case": {Level: SeverityError, Condition: Never, Value: []string{
				string(SentenceCase), string(StartCase), string(PascalCase), string(UpperCase),
			}},
			"subject-empty":     {Level: SeverityError, Condition: Never},
			"subject-full-stop": {Level: SeverityError, Condition: Never, Value: "."},
			"type-case":         {Level: SeverityError, Condition: Always, Value: string(LowerCase)},
			"type-empty":        {Level: SeverityError, Condition: Never},
			"type-enum":         {Level: SeverityError, Condition: Always, Value: types},
		},
	}
}

// sharedConfigs holds the rule sets a configuration can extend.
var sharedConfigs = map[string]func() Configuration{
	ConventionalConfigName: conventionalConfig,
}

// SharedConfigNames returns the names usable in Configuration.Extends.
func SharedConfigNames() []string {
	names := maputil.Keys(sharedConfigs)
	sort.Strings(names)
	return names
}

// lookupSharedConfig returns the shared configuration registered under
// name, accepting the npm package spelling as well.
func lookupSharedConfig(name string) (Configuration, bool) {
	f, ok := sharedConfigs[strings.TrimPrefix(name, sharedConfigPrefix)]
	if !ok {
		return Configuration{}, false
	}
	return f(), true
}
