package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zbiljic/commitlint/pkg/lint"
)

func lintDefault(t *testing.T, messages ...string) []lint.Report {
	t.Helper()

	l, err := lint.New(lint.Default())
	if err != nil {
		t.Fatalf("Failed to create linter: %s", err)
	}

	reports := make([]lint.Report, 0, len(messages))
	for _, m := range messages {
		reports = append(reports, l.Lint(m))
	}
	return reports
}

func TestReportWriterText(t *testing.T) {
	var buf bytes.Buffer
	w := reportWriter{out: &buf}

	if err := w.write(lintDefault(t, "Feat: add retry logic", "feat: add retry logic."), TextFormat); err != nil {
		t.Fatalf("Failed to write reports: %s", err)
	}

	out := buf.String()

	if strings.Contains(out, "input: Feat: add retry logic\n") {
		t.Errorf("Expected valid message to be skipped, got %q", out)
	}

	for _, expected := range []string{
		"input: feat: add retry logic.",
		"type must be pascal-case [type-case]",
		"subject may not end with full stop [subject-full-stop]",
		"found 3 problems, 0 warnings",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got %q", expected, out)
		}
	}
}

func TestReportWriterVerbose(t *testing.T) {
	var buf bytes.Buffer
	w := reportWriter{out: &buf, verbose: true}

	if err := w.write(lintDefault(t, "Feat: add retry logic", "Merge branch 'main'"), TextFormat); err != nil {
		t.Fatalf("Failed to write reports: %s", err)
	}

	out := buf.String()
	for _, expected := range []string{
		"input: Feat: add retry logic",
		"found 0 problems, 0 warnings",
		"input: Merge branch 'main'",
		"ignored",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("Expected output to contain %q, got %q", expected, out)
		}
	}
}

func TestReportWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := reportWriter{out: &buf}

	if err := w.write(lintDefault(t, "Feat: add retry logic."), JSONFormat); err != nil {
		t.Fatalf("Failed to write reports: %s", err)
	}

	var reports []lint.Report
	if err := json.Unmarshal(buf.Bytes(), &reports); err != nil {
		t.Fatalf("Failed to decode output: %s", err)
	}

	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}
	if reports[0].Valid {
		t.Error("Expected report to be invalid")
	}
	if len(reports[0].Errors) != 1 || reports[0].Errors[0].Name != "subject-full-stop" {
		t.Errorf("Expected subject-full-stop error, got %v", reports[0].Errors)
	}
}
