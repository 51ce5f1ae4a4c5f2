package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zbiljic/commitlint/internal/config"
	"github.com/zbiljic/commitlint/pkg/lint"
)

func resetFlags(cmds ...*cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue) //nolint:errcheck
		f.Changed = false
	}

	for _, cmd := range cmds {
		cmd.Flags().VisitAll(reset)
		cmd.PersistentFlags().VisitAll(reset)
	}
}

// executeCommand runs the root command with args in an empty temporary
// home directory, so no config file is picked up.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	return executeCommandIn(t, t.TempDir(), stdin, args...)
}

// executeCommandIn is executeCommand with dir as both the home and the
// working directory.
func executeCommandIn(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	t.Chdir(dir)

	config.ResetCache()
	resetFlags(rootCmd, lintCmd, configCmd)
	t.Cleanup(config.ResetCache)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	// nil args make cobra fall back to os.Args
	rootCmd.SetArgs(append([]string{}, args...))

	_, err := rootCmd.ExecuteC()
	return buf.String(), err
}

func TestLintCommandArgs(t *testing.T) {
	out, err := executeCommand(t, "", "lint", "Feat: add retry logic")
	if err != nil {
		t.Fatalf("Expected valid message, got %s\n%s", err, out)
	}
	if out != "" {
		t.Errorf("Expected no output for a valid message, got %q", out)
	}

	out, err = executeCommand(t, "", "lint", "feat: add retry logic")
	if !errors.Is(err, errLintFailed) {
		t.Fatalf("Expected errLintFailed, got %v", err)
	}
	if !strings.Contains(out, "[type-case]") {
		t.Errorf("Expected type-case problem, got %q", out)
	}
}

func TestLintCommandStdin(t *testing.T) {
	out, err := executeCommand(t, "Feat: add retry logic.\n", "lint")
	if !errors.Is(err, errLintFailed) {
		t.Fatalf("Expected errLintFailed, got %v", err)
	}
	if !strings.Contains(out, "[subject-full-stop]") {
		t.Errorf("Expected subject-full-stop problem, got %q", out)
	}

	if _, err := executeCommand(t, "  \n", "lint"); err == nil {
		t.Error("Expected an error for an empty message")
	}
}

func TestRootCommandHookMode(t *testing.T) {
	out, err := executeCommand(t, "feat: add retry logic\n")
	if !errors.Is(err, errLintFailed) {
		t.Fatalf("Expected lint failure from piped message, got %v", err)
	}
	if !strings.Contains(out, "type-case") {
		t.Errorf("Expected type-case problem in output, got %q", out)
	}

	if _, err := executeCommand(t, "Feat: add retry logic\n"); err != nil {
		t.Errorf("Expected piped valid message to pass, got %v", err)
	}
}

func writeMessageFile(t *testing.T, path, message string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create directory: %s", err)
	}
	if err := os.WriteFile(path, []byte(message), 0o644); err != nil {
		t.Fatalf("Failed to write message file: %s", err)
	}
}

func TestLintCommandEditFile(t *testing.T) {
	valid := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessageFile(t, valid, "Fix: handle nil pointers\n\n# Please enter the commit message for your changes.\n")

	invalid := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessageFile(t, invalid, "fix: handle nil pointers.\n")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"separate value", []string{"lint", "--edit", valid}, nil},
		{"inline value", []string{"lint", "--edit=" + valid}, nil},
		{"shorthand", []string{"lint", "-e", valid}, nil},
		{"root hook", []string{"--edit", valid}, nil},
		{"root hook inline", []string{"--edit=" + valid}, nil},
		{"invalid message", []string{"lint", "--edit", invalid}, errLintFailed},
		{"root hook invalid message", []string{"--edit", invalid}, errLintFailed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := executeCommand(t, "", test.args...)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Expected %v, got %v\n%s", test.wantErr, err, out)
			}
			if strings.Contains(out, valid) || strings.Contains(out, invalid) {
				t.Errorf("Expected the file content to be linted, not its path, got %q", out)
			}
		})
	}
}

func TestLintCommandEditFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessageFile(t, path, "Fix: handle nil pointers\n")

	if _, err := executeCommand(t, "", "lint", "--edit", path, "Feat: extra"); err == nil {
		t.Error("Expected an error for more than one file")
	}
	if _, err := executeCommand(t, "", "lint", "--edit", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected an error for a missing file")
	}
	if _, err := executeCommand(t, "", "unknown-command"); err == nil {
		t.Error("Expected root command to reject arguments without --edit")
	}
}

func TestLintCommandEditDefault(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	if out, err := exec.Command("git", "init", "-q", dir).CombinedOutput(); err != nil {
		t.Fatalf("Failed to init repository: %s\n%s", err, out)
	}
	writeMessageFile(t, filepath.Join(dir, ".git", "COMMIT_EDITMSG"), "feat: lower case type\n")

	for _, args := range [][]string{{"lint", "--edit"}, {"--edit"}} {
		out, err := executeCommandIn(t, dir, "", args...)
		if !errors.Is(err, errLintFailed) {
			t.Fatalf("%v: expected errLintFailed, got %v\n%s", args, err, out)
		}
		if !strings.Contains(out, "[type-case]") {
			t.Errorf("%v: expected type-case problem from COMMIT_EDITMSG, got %q", args, out)
		}
	}
}

func TestRootCommandEmptyStdin(t *testing.T) {
	out, err := executeCommand(t, "")
	if err != nil {
		t.Fatalf("Expected usage for empty stdin, got %v", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("Expected usage output, got %q", out)
	}

	if _, err := executeCommand(t, "", "lint"); !errors.Is(err, errNoMessages) {
		t.Errorf("Expected errNoMessages from lint with empty stdin, got %v", err)
	}
}

func TestLintCommandStrict(t *testing.T) {
	message := "Fix: handle nil pointers\nno blank line before the body"

	if out, err := executeCommand(t, "", "lint", message); err != nil {
		t.Fatalf("Expected warnings to pass, got %s\n%s", err, out)
	}

	out, err := executeCommand(t, "", "lint", "--strict", message)
	if !errors.Is(err, errLintFailed) {
		t.Fatalf("Expected errLintFailed with --strict, got %v", err)
	}
	if !strings.Contains(out, "[body-leading-blank]") {
		t.Errorf("Expected body-leading-blank warning, got %q", out)
	}
}

func TestLintCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "", "lint", "--format", "json", "Feat: "+strings.Repeat("a", 95))
	if !errors.Is(err, errLintFailed) {
		t.Fatalf("Expected errLintFailed, got %v", err)
	}

	var reports []lint.Report
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("Failed to decode output %q: %s", out, err)
	}
	if len(reports) != 1 || len(reports[0].Errors) != 1 || reports[0].Errors[0].Name != "header-max-length" {
		t.Errorf("Expected a single header-max-length error, got %+v", reports)
	}
}

func TestLintCommandConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "commitlint.json")
	content := `{"version": "1", "extends": ["config-conventional"], "rules": {}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %s", err)
	}

	if out, err := executeCommand(t, "", "--config", path, "lint", "feat: add retry logic"); err != nil {
		t.Errorf("Expected conventional lowercase type to pass, got %s\n%s", err, out)
	}

	if _, err := executeCommand(t, "", "--config", path, "lint", "Feat: add retry logic"); !errors.Is(err, errLintFailed) {
		t.Errorf("Expected PascalCase type to fail, got %v", err)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := executeCommand(t, "", "config")
	if err != nil {
		t.Fatalf("Failed to print config: %s", err)
	}

	var cfg lint.Configuration
	if err := json.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("Failed to decode output %q: %s", out, err)
	}

	if v, _ := cfg.Rules["type-case"].StringValue(); v != "pascal-case" {
		t.Errorf("Expected pascal-case type-case, got %q", v)
	}
	if _, ok := cfg.Rules["subject-case"]; !ok {
		t.Error("Expected inherited subject-case rule")
	}

	out, err = executeCommand(t, "", "config", "--raw")
	if err != nil {
		t.Fatalf("Failed to print config: %s", err)
	}
	if strings.Contains(out, "subject-case") {
		t.Errorf("Expected raw config without inherited rules, got %q", out)
	}
}
