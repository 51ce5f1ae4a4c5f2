package lint

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/samber/lo"

	"github.com/zbiljic/commitlint/pkg/commit"
)

// valueKind describes the shape of the value a rule expects.
type valueKind int

const (
	noValue valueKind = iota
	intValue
	stringValue
	stringsValue
	caseValue
)

// ruleFunc evaluates a rule against a parsed commit. It returns whether the
// commit passes and the message reported when it does not.
type ruleFunc func(c commit.Commit, when Condition, cfg RuleConfig) (bool, string)

type rule struct {
	kind  valueKind
	check ruleFunc
}

var rules = map[string]rule{
	"type-enum":        {stringsValue, enumRule("type", func(c commit.Commit) []string { return nonEmpty(c.Type) })},
	"type-case":        {caseValue, caseRule("type", func(c commit.Commit) string { return c.Type })},
	"type-empty":       {noValue, emptyRule("type", func(c commit.Commit) string { return c.Type })},
	"type-max-length":  {intValue, maxLengthRule("type", func(c commit.Commit) string { return c.Type })},
	"type-min-length":  {intValue, minLengthRule("type", func(c commit.Commit) string { return c.Type })},
	"scope-enum":       {stringsValue, enumRule("scope", commit.Commit.Scopes)},
	"scope-case":       {caseValue, caseRule("scope", func(c commit.Commit) string { return c.Scope })},
	"scope-empty":      {noValue, emptyRule("scope", func(c commit.Commit) string { return c.Scope })},
	"scope-max-length": {intValue, maxLengthRule("scope", func(c commit.Commit) string { return c.Scope })},
	"scope-min-length": {intValue, minLengthRule("scope", func(c commit.Commit) string { return c.Scope })},

	"subject-case":       {caseValue, subjectCaseRule},
	"subject-empty":      {noValue, emptyRule("subject", func(c commit.Commit) string { return c.Subject })},
	"subject-full-stop":  {stringValue, fullStopRule("subject", func(c commit.Commit) string { return c.Subject })},
	"subject-max-length": {intValue, maxLengthRule("subject", func(c commit.Commit) string { return c.Subject })},
	"subject-min-length": {intValue, minLengthRule("subject", func(c commit.Commit) string { return c.Subject })},

	"header-case":       {caseValue, caseRule("header", func(c commit.Commit) string { return c.Header })},
	"header-full-stop":  {stringValue, fullStopRule("header", func(c commit.Commit) string { return c.Header })},
	"header-max-length": {intValue, maxLengthRule("header", func(c commit.Commit) string { return c.Header })},
	"header-min-length": {intValue, minLengthRule("header", func(c commit.Commit) string { return c.Header })},
	"header-trim":       {noValue, headerTrimRule},

	"body-leading-blank":   {noValue, leadingBlankRule("body", func(c commit.Commit) (string, bool) { return c.Body, c.BodyLeadingBlank })},
	"body-empty":           {noValue, emptyRule("body", func(c commit.Commit) string { return c.Body })},
	"body-max-length":      {intValue, maxLengthRule("body", func(c commit.Commit) string { return c.Body })},
	"body-min-length":      {intValue, minLengthRule("body", func(c commit.Commit) string { return c.Body })},
	"body-max-line-length": {intValue, maxLineLengthRule("body", func(c commit.Commit) string { return c.Body })},

	"footer-leading-blank":   {noValue, leadingBlankRule("footer", func(c commit.Commit) (string, bool) { return c.Footer, c.FooterLeadingBlank })},
	"footer-empty":           {noValue, emptyRule("footer", func(c commit.Commit) string { return c.Footer })},
	"footer-max-length":      {intValue, maxLengthRule("footer", func(c commit.Commit) string { return c.Footer })},
	"footer-min-length":      {intValue, minLengthRule("footer", func(c commit.Commit) string { return c.Footer })},
	"footer-max-line-length": {intValue, maxLineLengthRule("footer", func(c commit.Commit) string { return c.Footer })},
}

// RuleNames returns the names of all supported rules, sorted.
func RuleNames() []string {
	names := maputil.Keys(rules)
	sort.Strings(names)
	return names
}

// IsKnownRule reports whether name is a supported rule.
func IsKnownRule(name string) bool {
	_, ok := rules[name]
	return ok
}

func must(when Condition) string {
	if when.negated() {
		return "must not"
	}
	return "must"
}

func may(when Condition) string {
	if when.negated() {
		return "may not"
	}
	return "must"
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func enumRule(part string, get func(commit.Commit) []string) ruleFunc {
	return func(c commit.Commit, when Condition, cfg RuleConfig) (bool, string) {
		values := get(c)
		if len(values) == 0 {
			return true, ""
		}

		allowed, _ := cfg.StringsValue()
		if len(allowed) == 0 {
			return true, ""
		}

		inEnum := lo.Every(allowed, values)
		if when.negated() {
			inEnum = !lo.Some(allowed, values)
		}

		return inEnum, fmt.Sprintf("%s %s be one of [%s]", part, must(when), strings.Join(allowed, ", "))
	}
}

// ruleCases returns the cases configured for a case rule, which accept a
// single case name or a list of them.
func ruleCases(cfg RuleConfig) []Case {
	var names []string
	if s, ok := cfg.StringValue(); ok {
		names = []string{s}
	} else {
		names, _ = cfg.StringsValue()
	}

	return lo.FilterMap(names, func(name string, _ int) (Case, bool) {
		return ParseCase(name)
	})
}

func matchesAnyCase(s string, cases []Case) bool {
	return lo.SomeBy(cases, func(c Case) bool {
		return IsCase(s, c)
	})
}

func caseNames(cases []Case) string {
	return strings.Join(lo.Map(cases, func(c Case, _ int) string { return string(c) }), ", ")
}

func caseRule(part string, get func(commit.Commit) string) ruleFunc {
	return func(c commit.Commit, when Condition, cfg RuleConfig) (bool, string) {
		value := get(c)
		if value == "" {
			return true, ""
		}

		cases := ruleCases(cfg)
		matches := matchesAnyCase(value, cases)
		if when.negated() {
			matches = !matches
		}

		return matches, fmt.Sprintf("%s %s be %s", part, must(when), caseNames(cases))
	}
}

var startsWithLetterRegex = regexp.MustCompile(`^\pL`)

// subjectCaseRule behaves like caseRule but skips subjects that do not
// start with a letter, such as ones starting with a version or a path.
func subjectCaseRule(c commit.Commit, when Condition, cfg RuleConfig) (bool, string) {
	if !startsWithLetterRegex.MatchString(c.Subject) {
		return true, ""
	}
	return caseRule("subject", func(c commit.Commit) string { return c.Subject })(c, when, cfg)
}

func emptyRule(part string, get func(commit.Commit) string) ruleFunc {
	return func(c commit.Commit, when Condition, _ RuleConfig) (bool, string) {
		empty := strings.TrimSpace(get(c)) == ""
		if when.negated() {
			return !empty, fmt.Sprintf("%s may not be empty", part)
		}
		return empty, fmt.Sprintf("%s must be empty", part)
	}
}

func fullStopRule(part string, get func(commit.Commit) string) ruleFunc {
	return func(c commit.Commit, when Condition, cfg RuleConfig) (bool, string) {
		value := get(c)
		if value == "" {
			return true, ""
		}

		stop, _ := cfg.StringValue()
		// an ellipsis is not a full stop
		ends := strings.HasSuffix(value, stop) && !strings.HasSuffix(value, "...")
		if when.negated() {
			return !ends, fmt.Sprintf("%s %s end with full stop", part, may(when))
		}
		return ends, fmt.Sprintf("%s must end with full stop", part)
	}
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

// maxLengthRule checks the upper bound regardless of the condition.
func maxLengthRule(part string, get func(commit.Commit) string) ruleFunc {
	return func(c commit.Commit, _ Condition, cfg RuleConfig) (bool, string) {
		value := get(c)
		limit, _ := cfg.IntValue()
		n := length(value)
		return n <= limit, fmt.Sprintf("%s must not be longer than %d characters, current length is %d", part, limit, n)
	}
}

// minLengthRule checks the lower bound regardless of the condition. Empty
// parts are left to the matching -empty rule.
func minLengthRule(part string, get func(commit.Commit) string) ruleFunc {
	return func(c commit.Commit, _ Condition, cfg RuleConfig) (bool, string) {
		value := get(c)
		if value == "" {
			return true, ""
		}
		limit, _ := cfg.IntValue()
		n := length(value)
		return n >= limit, fmt.Sprintf("%s must not be shorter than %d characters, current length is %d", part, limit, n)
	}
}

var urlLineRegex = regexp.MustCompile(`^\S*[a-z][a-z0-9+.-]*://\S+$`)

// maxLineLengthRule checks every line of a multi-line part. Lines holding
// a single URL are exempt since they cannot be wrapped.
func maxLineLengthRule(part string, get func(commit.Commit) string) ruleFunc {
	return func(c commit.Commit, _ Condition, cfg RuleConfig) (bool, string) {
		limit, _ := cfg.IntValue()
		msg := fmt.Sprintf("%s's lines must not be longer than %d characters", part, limit)

		for _, line := range strings.Split(get(c), "\n") {
			if length(line) > limit && !urlLineRegex.MatchString(strings.TrimSpace(line)) {
				return false, msg
			}
		}
		return true, msg
	}
}

func leadingBlankRule(part string, get func(commit.Commit) (string, bool)) ruleFunc {
	return func(c commit.Commit, when Condition, _ RuleConfig) (bool, string) {
		value, leadingBlank := get(c)
		if value == "" {
			return true, ""
		}
		if when.negated() {
			return !leadingBlank, fmt.Sprintf("%s must not have leading blank line", part)
		}
		return leadingBlank, fmt.Sprintf("%s must have leading blank line", part)
	}
}

// headerTrimRule checks the bound regardless of the condition.
func headerTrimRule(c commit.Commit, _ Condition, _ RuleConfig) (bool, string) {
	h := c.Header
	start := strings.TrimLeft(h, " \t") != h
	end := strings.TrimRight(h, " \t") != h

	switch {
	case start && end:
		return false, "header must not be surrounded by whitespace"
	case start:
		return false, "header must not start with whitespace"
	case end:
		return false, "header must not end with whitespace"
	}
	return true, ""
}
