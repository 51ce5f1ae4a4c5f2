package lint

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/samber/lo"
)

// Configuration selects the shared rule sets to inherit from and the rules
// declared locally on top of them.
type Configuration struct {
	Extends []string              `json:"extends"`
	Rules   map[string]RuleConfig `json:"rules"`
}

// ProjectCommitTypes are the commit types allowed in this project's
// history, in PascalCase.
var ProjectCommitTypes = []string{"Feat", "Fix", "Chore", "Style", "Docs", "Refactor", "Init", "Build"}

// ProjectMaxHeaderLength is the maximum length of a commit header.
const ProjectMaxHeaderLength = 100

// Default returns the project's commit message configuration: the
// conventional rule set with PascalCase commit types.
func Default() Configuration {
	return Configuration{
		Extends: []string{ConventionalConfigName},
		Rules: map[string]RuleConfig{
			"type-case":         {Level: SeverityError, Condition: Always, Value: string(PascalCase)},
			"type-enum":         {Level: SeverityError, Condition: Always, Value: append([]string(nil), ProjectCommitTypes...)},
			"subject-full-stop": {Level: SeverityError, Condition: Never, Value: "."},
			"header-max-length": {Level: SeverityError, Condition: Always, Value: ProjectMaxHeaderLength},
		},
	}
}

// Clone returns a copy of c that shares no maps or slices with it. Rule
// values are treated as immutable.
func (c Configuration) Clone() Configuration {
	return Configuration{
		Extends: append([]string(nil), c.Extends...),
		Rules:   lo.Assign(c.Rules),
	}
}

// Resolve flattens the configuration: the shared configurations named in
// Extends are merged in order, later ones overriding earlier ones, and the
// local rules override everything inherited under the same name. The
// returned configuration keeps Extends for reference.
func Resolve(c Configuration) (Configuration, error) {
	rules, err := resolveRules(c, nil)
	if err != nil {
		return Configuration{}, err
	}

	return Configuration{
		Extends: append([]string(nil), c.Extends...),
		Rules:   rules,
	}, nil
}

func resolveRules(c Configuration, seen []string) (map[string]RuleConfig, error) {
	inherited := make([]map[string]RuleConfig, 0, len(c.Extends)+1)

	for _, name := range c.Extends {
		if lo.Contains(seen, name) {
			return nil, fmt.Errorf("%w: %s", ErrCircularExtends, strings.Join(append(seen, name), " -> "))
		}

		shared, ok := lookupSharedConfig(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownExtends, name, strings.Join(SharedConfigNames(), ", "))
		}

		rules, err := resolveRules(shared, append(seen, name))
		if err != nil {
			return nil, err
		}
		inherited = append(inherited, rules)
	}

	inherited = append(inherited, c.Rules)

	return lo.Assign(inherited...), nil
}

// Validate checks that every rule is known and configured with a valid
// severity, condition and value. All problems are reported together.
func (c Configuration) Validate() error {
	var errs []error

	names := maputil.Keys(c.Rules)
	sort.Strings(names)

	for _, name := range names {
		if err := validateRule(name, c.Rules[name]); err != nil {
			errs = append(errs, fmt.Errorf("rule %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func validateRule(name string, cfg RuleConfig) error {
	r, ok := rules[name]
	if !ok {
		return ErrUnknownRule
	}

	if !cfg.Level.Valid() {
		return fmt.Errorf("%w: %d (must be 0, 1 or 2)", ErrInvalidSeverity, int(cfg.Level))
	}
	if !cfg.Condition.Valid() {
		return fmt.Errorf("%w: %q (must be %q or %q)", ErrInvalidCondition, cfg.Condition, Always, Never)
	}

	if !cfg.Enabled() {
		return nil
	}

	if r.kind != noValue && cfg.Value == nil {
		return ErrMissingRuleSetting
	}

	switch r.kind {
	case intValue:
		if n, ok := cfg.IntValue(); !ok || n < 0 {
			return fmt.Errorf("%w: expected a non-negative integer, got %v", ErrInvalidValue, cfg.Value)
		}
	case stringValue:
		if _, ok := cfg.StringValue(); !ok {
			return fmt.Errorf("%w: expected a string, got %v", ErrInvalidValue, cfg.Value)
		}
	case stringsValue:
		if _, ok := cfg.StringsValue(); !ok {
			return fmt.Errorf("%w: expected a list of strings, got %v", ErrInvalidValue, cfg.Value)
		}
	case caseValue:
		var names []string
		if s, ok := cfg.StringValue(); ok {
			names = []string{s}
		} else if list, ok := cfg.StringsValue(); ok {
			names = list
		} else {
			return fmt.Errorf("%w: expected a case name or a list of case names, got %v", ErrInvalidValue, cfg.Value)
		}
		for _, n := range names {
			if _, ok := ParseCase(n); !ok {
				return fmt.Errorf("%w: unknown case %q", ErrInvalidValue, n)
			}
		}
	}

	return nil
}
