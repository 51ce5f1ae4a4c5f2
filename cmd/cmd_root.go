package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zbiljic/commitlint/internal/buildinfo"
	"github.com/zbiljic/commitlint/internal/log"
	"github.com/zbiljic/commitlint/pkg/versioninfo"
)

// AppName - the name of the application.
const AppName = "commitlint"

var rootCmd = &cobra.Command{
	Use:   AppName,
	Short: "Lint commit messages",
	Long: `Lint commit messages against the conventional commit rules.

Without a subcommand and with a message piped on stdin, the message is linted,
which allows using the binary directly as a commit-msg hook.`,
	Version: versioninfo.Info{
		Version: buildinfo.Version,
		Commit:  buildinfo.GitCommit,
		BuiltBy: buildinfo.BuiltBy,
	}.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)

		logConfig := log.Config{NoColor: !useColor()}
		if rootFlags.Verbose {
			logConfig.Level = "debug"
		}
		log.Configure(logConfig)
	},
	Args:          rootArgs,
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var rootFlags = rootOptions{}

type rootOptions struct {
	Config  string
	Verbose bool
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootFlags.Config, "config", "c", "", "Path to the config file (searched for by default)")
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.Verbose, "verbose", "v", false, "Print debug logs and reports for valid messages")

	lintAddFlags(rootCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called my main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if errors.Is(err, errLintFailed) {
			os.Exit(1)
		}

		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

// rootArgs accepts the single file argument of "--edit FILE" and rejects
// anything else as an unknown command.
func rootArgs(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("edit") {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	return cobra.NoArgs(cmd, args)
}

func runRootE(cmd *cobra.Command, args []string) error {
	if !isHookInvocation(cmd) {
		cmd.Usage() //nolint:errcheck
		return nil
	}

	err := runLintE(cmd, args)
	if errors.Is(err, errNoMessages) && !lintSourceFlagChanged(cmd) {
		// empty stdin, e.g. </dev/null in CI
		cmd.Usage() //nolint:errcheck
		return nil
	}

	return err
}

// lintSourceFlagChanged reports whether a message source was selected
// with a flag.
func lintSourceFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"edit", "from", "to", "last"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// isHookInvocation reports whether a message source was given, either
// through flags or by piping into stdin.
func isHookInvocation(cmd *cobra.Command) bool {
	if lintSourceFlagChanged(cmd) {
		return true
	}
	return cmd.InOrStdin() != os.Stdin || !term.IsTerminal(int(os.Stdin.Fd()))
}
