package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zbiljic/commitlint/internal/log"
	"github.com/zbiljic/commitlint/pkg/lint"
)

// editMessageDefault is used when --edit is given without a file.
const editMessageDefault = "COMMIT_EDITMSG"

var (
	// errLintFailed is returned when at least one message does not pass.
	errLintFailed = errors.New("commit message lint failed")
	// errNoMessages is returned when the selected source holds no message.
	errNoMessages = errors.New("no commit messages to lint")
)

var lintCmd = &cobra.Command{
	Use:   "lint [message...]",
	Short: "Lint commit messages",
	Long: `Lints commit messages given as arguments, read from a file with --edit,
taken from the git history with --from/--to/--last, or piped on stdin.

Use it in a commit-msg hook as:

  commitlint lint --edit "$1"`,
	Example: `  commitlint lint "Feat: add retry logic"
  git log -1 --format=%B | commitlint lint
  commitlint lint --from origin/main`,
	Args: cobra.ArbitraryArgs,
	RunE: runLintE,
}

var lintFlags = lintOptions{
	Format: TextFormat,
}

type lintOptions struct {
	Edit      string
	From      string
	To        string
	Last      bool
	Format    OutputFormat
	Strict    bool
	NoIgnores bool
}

func lintAddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&lintFlags.Edit, "edit", "e", "", "Read the message from a file (defaults to the repository's COMMIT_EDITMSG)")
	cmd.Flags().Lookup("edit").NoOptDefVal = editMessageDefault
	cmd.Flags().StringVar(&lintFlags.From, "from", "", "Lower end of the commit range to lint (exclusive)")
	cmd.Flags().StringVar(&lintFlags.To, "to", "", "Upper end of the commit range to lint (defaults to HEAD)")
	cmd.Flags().BoolVarP(&lintFlags.Last, "last", "l", false, "Lint the last commit")
	cmd.Flags().BoolVar(&lintFlags.Strict, "strict", false, "Treat warnings as errors")
	cmd.Flags().BoolVar(&lintFlags.NoIgnores, "no-ignores", false, "Lint merge, revert and release commits too")
	addFormatFlag(cmd, &lintFlags.Format)
}

func init() {
	lintAddFlags(lintCmd)

	rootCmd.AddCommand(lintCmd)
}

func runLintE(cmd *cobra.Command, args []string) error {
	logger := log.WithComponent("lint")

	messages, err := lintReadMessages(cmd, args)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		return errNoMessages
	}

	var opts []lint.Option
	if lintFlags.NoIgnores {
		opts = append(opts, lint.WithoutDefaultIgnores())
	}

	linter, err := newLinter(opts...)
	if err != nil {
		return err
	}

	reports := make([]lint.Report, 0, len(messages))
	failed := false

	for _, message := range messages {
		report := linter.Lint(message)
		if report.Ignored {
			logger.Debug().Str("input", report.Input).Msg("message ignored")
		}
		if !report.Valid || (lintFlags.Strict && len(report.Warnings) > 0) {
			failed = true
		}
		reports = append(reports, report)
	}

	w := reportWriter{
		out:     cmd.OutOrStdout(),
		color:   useColor(),
		verbose: rootFlags.Verbose,
	}
	if err := w.write(reports, lintFlags.Format); err != nil {
		return err
	}

	if failed {
		return errLintFailed
	}

	return nil
}

// lintEditPath returns the file to read for --edit. The flag takes an
// optional value, so "--edit FILE" leaves FILE as the only argument and
// "--edit" alone means the repository's COMMIT_EDITMSG.
func lintEditPath(edit string, args []string) (string, error) {
	if edit != editMessageDefault {
		if len(args) > 0 {
			return "", errors.New("--edit cannot be combined with message arguments")
		}
		return edit, nil
	}

	switch len(args) {
	case 0:
	case 1:
		return args[0], nil
	default:
		return "", errors.New("--edit accepts a single file")
	}

	workDir, err := setupGitWorkDir()
	if err != nil {
		return "", err
	}

	return gitEditMessagePath(workDir)
}

// lintReadMessages collects the messages to lint from, in order of
// precedence, the --edit file, the arguments, the git range flags and stdin.
func lintReadMessages(cmd *cobra.Command, args []string) ([]string, error) {
	logger := log.WithComponent("lint")

	switch {
	case cmd.Flags().Changed("edit"):
		path, err := lintEditPath(lintFlags.Edit, args)
		if err != nil {
			return nil, err
		}

		logger.Debug().Str("path", path).Msg("reading commit message file")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read commit message: %w", err)
		}
		return []string{string(data)}, nil

	case len(args) > 0:
		return args, nil

	case lintFlags.From != "" || lintFlags.To != "" || lintFlags.Last:
		if lintFlags.Last && (lintFlags.From != "" || lintFlags.To != "") {
			return nil, errors.New("--last cannot be combined with --from or --to")
		}

		workDir, err := setupGitWorkDir()
		if err != nil {
			return nil, err
		}

		logger.Debug().Str("from", lintFlags.From).Str("to", lintFlags.To).Msg("reading commits")

		return gitCommitMessages(workDir, lintFlags.From, lintFlags.To)

	default:
		in := cmd.InOrStdin()
		if in == os.Stdin && term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no commit message given: pass it as an argument, pipe it on stdin or use --edit, --from or --last")
		}

		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return nil, nil
		}
		return []string{string(data)}, nil
	}
}
