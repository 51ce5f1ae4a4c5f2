package lint

import (
	"sort"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/samber/lo"

	"github.com/zbiljic/commitlint/pkg/commit"
)

// Problem is a single rule violation.
type Problem struct {
	Name    string   `json:"name"`
	Level   Severity `json:"level"`
	Message string   `json:"message"`
}

// Report is the outcome of linting one commit message.
type Report struct {
	Valid    bool      `json:"valid"`
	Ignored  bool      `json:"ignored,omitempty"`
	Input    string    `json:"input"`
	Errors   []Problem `json:"errors"`
	Warnings []Problem `json:"warnings"`
}

// Linter checks commit messages against a resolved configuration.
type Linter struct {
	config         Configuration
	names          []string
	defaultIgnores bool
	ignores        []IgnoreFunc
}

// Option configures a Linter.
type Option func(*Linter)

// WithoutDefaultIgnores makes the linter check merge, revert and release
// commits like any other message.
func WithoutDefaultIgnores() Option {
	return func(l *Linter) {
		l.defaultIgnores = false
	}
}

// WithIgnores adds custom checks for messages that should be skipped.
func WithIgnores(ignores ...IgnoreFunc) Option {
	return func(l *Linter) {
		l.ignores = append(l.ignores, ignores...)
	}
}

// New resolves and validates the configuration and returns a linter for it.
func New(cfg Configuration, opts ...Option) (*Linter, error) {
	resolved, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}

	if err := resolved.Validate(); err != nil {
		return nil, err
	}

	names := maputil.Keys(resolved.Rules)
	sort.Strings(names)

	l := &Linter{
		config:         resolved,
		names:          names,
		defaultIgnores: true,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l, nil
}

// Config returns the resolved configuration the linter applies.
func (l *Linter) Config() Configuration {
	return l.config.Clone()
}

// Lint parses message and evaluates every enabled rule against it.
func (l *Linter) Lint(message string) Report {
	report := Report{
		Valid:    true,
		Input:    message,
		Errors:   []Problem{},
		Warnings: []Problem{},
	}

	if l.isIgnored(message) {
		report.Ignored = true
		return report
	}

	c := commit.Parse(message)

	for _, name := range l.names {
		cfg := l.config.Rules[name]
		if !cfg.Enabled() {
			continue
		}

		ok, msg := rules[name].check(c, cfg.When(), cfg)
		if ok {
			continue
		}

		p := Problem{Name: name, Level: cfg.Level, Message: msg}
		if cfg.Level == SeverityError {
			report.Errors = append(report.Errors, p)
		} else {
			report.Warnings = append(report.Warnings, p)
		}
	}

	report.Valid = len(report.Errors) == 0

	return report
}

func (l *Linter) isIgnored(message string) bool {
	ignores := l.ignores
	if l.defaultIgnores {
		ignores = append(append([]IgnoreFunc(nil), DefaultIgnores...), l.ignores...)
	}

	return lo.SomeBy(ignores, func(ignore IgnoreFunc) bool {
		return ignore(message)
	})
}

// Lint checks a single message against cfg.
func Lint(message string, cfg Configuration, opts ...Option) (Report, error) {
	l, err := New(cfg, opts...)
	if err != nil {
		return Report{}, err
	}
	return l.Lint(message), nil
}
