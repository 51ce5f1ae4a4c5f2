package lint

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Severity is the level a rule is reported with.
type Severity int

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = iota
	// SeverityWarning reports a problem without failing the check.
	SeverityWarning
	// SeverityError reports a problem and fails the check.
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityOff:     "off",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Valid reports whether s is one of the defined levels.
func (s Severity) Valid() bool {
	_, ok := severityNames[s]
	return ok
}

// Condition tells whether the rule's condition must always or never hold.
type Condition string

const (
	Always Condition = "always"
	Never  Condition = "never"
)

// Valid reports whether c is a known condition. The empty condition is
// valid and means Always.
func (c Condition) Valid() bool {
	return c == "" || c == Always || c == Never
}

func (c Condition) negated() bool {
	return c == Never
}

// RuleConfig is a single rule setting, written as the tuple
// [severity, condition, value] in configuration files.
//
// Value is one of string, int or []string depending on the rule, or nil
// for rules that take no value.
type RuleConfig struct {
	Level     Severity
	Condition Condition
	Value     any
}

// Enabled reports whether the rule is evaluated at all.
func (r RuleConfig) Enabled() bool {
	return r.Level > SeverityOff
}

// When returns the effective condition of the rule.
func (r RuleConfig) When() Condition {
	if r.Condition == "" {
		return Always
	}
	return r.Condition
}

// StringValue returns the value as a string.
func (r RuleConfig) StringValue() (string, bool) {
	s, ok := r.Value.(string)
	return s, ok
}

// IntValue returns the value as an integer.
func (r RuleConfig) IntValue() (int, bool) {
	switch v := r.Value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// StringsValue returns the value as a list of strings.
func (r RuleConfig) StringsValue() ([]string, bool) {
	switch v := r.Value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// MarshalJSON encodes the rule as a tuple, omitting trailing empty parts.
func (r RuleConfig) MarshalJSON() ([]byte, error) {
	tuple := []any{int(r.Level)}
	if r.Condition != "" || r.Value != nil {
		tuple = append(tuple, r.When())
	}
	if r.Value != nil {
		tuple = append(tuple, r.Value)
	}
	return json.Marshal(tuple)
}

// UnmarshalJSON decodes the [severity, condition, value] tuple. Whole
// numbers become int and arrays of strings become []string.
func (r *RuleConfig) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return ErrInvalidRuleTuple
	}
	if len(tuple) < 1 || len(tuple) > 3 {
		return ErrInvalidRuleTuple
	}

	var level int
	if err := json.Unmarshal(tuple[0], &level); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSeverity, strings.TrimSpace(string(tuple[0])))
	}

	out := RuleConfig{Level: Severity(level)}

	if len(tuple) > 1 {
		var cond string
		if err := json.Unmarshal(tuple[1], &cond); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCondition, strings.TrimSpace(string(tuple[1])))
		}
		out.Condition = Condition(cond)
	}

	if len(tuple) > 2 {
		var value any
		if err := json.Unmarshal(tuple[2], &value); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidValue, err)
		}
		out.Value = normalizeValue(value)
	}

	*r = out
	return nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) {
			return int(val)
		}
	case []any:
		strs := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return val
			}
			strs = append(strs, s)
		}
		return strs
	}
	return v
}
