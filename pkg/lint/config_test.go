package lint

import (
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := Default()

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Failed to marshal default configuration: %s", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal default configuration: %s", err)
	}

	keys := maputil.Keys(raw)
	sort.Strings(keys)
	if diff := cmp.Diff([]string{"extends", "rules"}, keys); diff != "" {
		t.Errorf("Top-level keys mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"config-conventional"}, cfg.Extends); diff != "" {
		t.Errorf("Extends mismatch (-want +got):\n%s", diff)
	}

	if len(cfg.Rules) != 4 {
		t.Errorf("Expected 4 rules, got %d", len(cfg.Rules))
	}

	tests := []struct {
		name     string
		expected RuleConfig
	}{
		{"type-case", RuleConfig{Level: SeverityError, Condition: Always, Value: "pascal-case"}},
		{"type-enum", RuleConfig{Level: SeverityError, Condition: Always, Value: []string{"Feat", "Fix", "Chore", "Style", "Docs", "Refactor", "Init", "Build"}}},
		{"subject-full-stop", RuleConfig{Level: SeverityError, Condition: Never, Value: "."}},
		{"header-max-length", RuleConfig{Level: SeverityError, Condition: Always, Value: 100}},
	}

	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cfg.Rules[tt.name]
			if !ok {
				t.Fatalf("Expected rule %q to be configured", tt.name)
			}
			if diff := cmp.Diff(tt.expected, got, sortStrings); diff != "" {
				t.Errorf("Rule %q mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestDefaultConfigurationJSON(t *testing.T) {
	data, err := json.Marshal(Default().Rules["header-max-length"])
	if err != nil {
		t.Fatalf("Failed to marshal rule: %s", err)
	}
	if string(data) != `[2,"always",100]` {
		t.Errorf("Expected tuple [2,\"always\",100], got %s", data)
	}

	data, err = json.Marshal(Default().Rules["type-enum"])
	if err != nil {
		t.Fatalf("Failed to marshal rule: %s", err)
	}
	expected := `[2,"always",["Feat","Fix","Chore","Style","Docs","Refactor","Init","Build"]]`
	if string(data) != expected {
		t.Errorf("Expected tuple %s, got %s", expected, data)
	}
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	cfg := Default()
	types, _ := cfg.Rules["type-enum"].StringsValue()
	types[0] = "Changed"
	delete(cfg.Rules, "type-case")

	again := Default()
	if _, ok := again.Rules["type-case"]; !ok {
		t.Error("Expected type-case in a new default configuration")
	}
	if types, _ := again.Rules["type-enum"].StringsValue(); types[0] != "Feat" {
		t.Errorf("Expected first type Feat, got %s", types[0])
	}
}

func TestResolve(t *testing.T) {
	resolved, err := Resolve(Default())
	if err != nil {
		t.Fatalf("Failed to resolve configuration: %s", err)
	}

	// local rules take precedence over inherited ones
	if v, _ := resolved.Rules["type-case"].StringValue(); v != "pascal-case" {
		t.Errorf("Expected local type-case to win, got %q", v)
	}
	if types, _ := resolved.Rules["type-enum"].StringsValue(); len(types) != 8 {
		t.Errorf("Expected local type-enum with 8 types, got %v", types)
	}

	// inherited rules are kept
	for _, name := range []string{"type-empty", "subject-empty", "subject-case", "header-trim", "body-leading-blank", "footer-max-line-length"} {
		if _, ok := resolved.Rules[name]; !ok {
			t.Errorf("Expected inherited rule %q", name)
		}
	}

	if diff := cmp.Diff(Default().Extends, resolved.Extends); diff != "" {
		t.Errorf("Extends mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveOverridesInheritedSeverity(t *testing.T) {
	cfg := Configuration{
		Extends: []string{"@commitlint/config-conventional"},
		Rules: map[string]RuleConfig{
			"body-leading-blank": {Level: SeverityOff},
		},
	}

	resolved, err := Resolve(cfg)
	if err != nil {
		t.Fatalf("Failed to resolve configuration: %s", err)
	}

	if resolved.Rules["body-leading-blank"].Enabled() {
		t.Error("Expected body-leading-blank to be disabled by the local rule")
	}
	if lvl := resolved.Rules["subject-empty"].Level; lvl != SeverityError {
		t.Errorf("Expected inherited subject-empty at error level, got %s", lvl)
	}
}

func TestResolveUnknownExtends(t *testing.T) {
	_, err := Resolve(Configuration{Extends: []string{"config-angular"}})
	if !errors.Is(err, ErrUnknownExtends) {
		t.Errorf("Expected ErrUnknownExtends, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		rules    map[string]RuleConfig
		expected error
	}{
		{
			name:  "default is valid",
			rules: Default().Rules,
		},
		{
			name:     "unknown rule",
			rules:    map[string]RuleConfig{"type-color": {Level: SeverityError, Condition: Always, Value: "red"}},
			expected: ErrUnknownRule,
		},
		{
			name:     "invalid severity",
			rules:    map[string]RuleConfig{"type-empty": {Level: 3, Condition: Never}},
			expected: ErrInvalidSeverity,
		},
		{
			name:     "invalid condition",
			rules:    map[string]RuleConfig{"type-empty": {Level: SeverityError, Condition: "sometimes"}},
			expected: ErrInvalidCondition,
		},
		{
			name:     "enum needs a list",
			rules:    map[string]RuleConfig{"type-enum": {Level: SeverityError, Condition: Always, Value: "Feat"}},
			expected: ErrInvalidValue,
		},
		{
			name:     "max length needs an integer",
			rules:    map[string]RuleConfig{"header-max-length": {Level: SeverityError, Condition: Always, Value: "100"}},
			expected: ErrInvalidValue,
		},
		{
			name:     "unknown case",
			rules:    map[string]RuleConfig{"type-case": {Level: SeverityError, Condition: Always, Value: "title-case"}},
			expected: ErrInvalidValue,
		},
		{
			name:     "missing value",
			rules:    map[string]RuleConfig{"subject-full-stop": {Level: SeverityError, Condition: Never}},
			expected: ErrMissingRuleSetting,
		},
		{
			name:  "disabled rule needs no value",
			rules: map[string]RuleConfig{"header-max-length": {Level: SeverityOff}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Configuration{Rules: tt.rules}.Validate()
			if tt.expected == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestRuleNames(t *testing.T) {
	names := RuleNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted rule names, got %v", names)
	}
	for name := range Default().Rules {
		if !IsKnownRule(name) {
			t.Errorf("Expected %q to be a known rule", name)
		}
	}
}
