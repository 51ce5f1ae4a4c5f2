package cmd

import (
	"errors"
	"fmt"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/orochaa/go-clack/prompts"
	"github.com/orochaa/go-clack/third_party/picocolors"
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"

	"github.com/zbiljic/commitlint/internal/log"
	"github.com/zbiljic/commitlint/pkg/commit"
	"github.com/zbiljic/commitlint/pkg/lint"
)

var promptCmd = &cobra.Command{
	Use: "prompt [message]",
	Aliases: []string{
		"p",
		"commit",
	},
	Short: "Compose a commit message interactively",
	Long: `Asks for the commit type, scope and subject, checks the result against the
configured rules and commits the staged changes with it.

An optional message prefills the answers, e.g. to fix a rejected header.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPromptE,
}

var promptFlags = promptOptions{
	Type:   commit.ConventionalType,
	DryRun: false,
}

type promptOptions struct {
	Type   commit.Type
	DryRun bool
}

func init() {
	promptCmd.Flags().VarP(enumflag.New(&promptFlags.Type, "type", commit.TypeIds, enumflag.EnumCaseInsensitive), "type", "t", "Type of commit message to compose (conventional, simple)")
	promptCmd.Flags().BoolVarP(&promptFlags.DryRun, "dry-run", "n", false, "Print the message instead of committing")

	rootCmd.AddCommand(promptCmd)
}

func runPromptE(cmd *cobra.Command, args []string) error {
	prompts.Intro(picocolors.BgCyan(picocolors.Black(fmt.Sprintf(" %s ", AppName))))
	// in order to show custom error
	injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

	workDir, err := setupGitWorkDir()
	if err != nil {
		return err
	}

	linter, err := newLinter()
	if err != nil {
		return err
	}

	var initial commit.Message
	if len(args) > 0 {
		initial = commit.Parse(args[0]).Message()
	}

	logger := log.WithComponent("prompt")
	logger.Debug().Str("type", promptFlags.Type.ToString()).Str("initial", initial.ToString()).Msg("composing commit message")

	message, err := promptCommitMessage(linter, promptFlags.Type, initial)
	if err != nil {
		if prompts.IsCancel(err) {
			prompts.Outro("Commit cancelled")
			return nil
		}
		return err
	}

	if report := linter.Lint(message); !report.Valid {
		return fmt.Errorf("%s: %s", report.Errors[0].Name, report.Errors[0].Message)
	}

	if promptFlags.DryRun {
		prompts.Outro(message)
		return nil
	}

	if err := gitCommit(workDir, message); err != nil {
		return err
	}

	prompts.Outro(fmt.Sprintf("%s Successfully committed", picocolors.Green(symbolSuccess)))

	return nil
}

// promptTypeOptions returns the select options for the allowed commit
// types, keeping the order they are configured in.
func promptTypeOptions(cfg lint.Configuration) []*prompts.SelectOption[string] {
	types, _ := cfg.Rules["type-enum"].StringsValue()

	return slice.Map(types, func(_ int, t string) *prompts.SelectOption[string] {
		label := t
		if d := commit.TypeDescription(t); d != "" {
			label = fmt.Sprintf("%s %s", t, picocolors.Gray("- "+d))
		}
		return &prompts.SelectOption[string]{Label: label, Value: t}
	})
}

// firstError lints message and returns its first error as an error value.
func firstError(linter *lint.Linter, message string) error {
	report := linter.Lint(message)
	if report.Valid {
		return nil
	}
	return errors.New(report.Errors[0].Message)
}

func promptCommitMessage(linter *lint.Linter, commitType commit.Type, initial commit.Message) (string, error) {
	commitMessage := initial
	if commitType == commit.SimpleType {
		commitMessage = commit.Message{CommitMessage: initial.ToString()}
	}

	typeOptions := promptTypeOptions(linter.Config())

	err := prompts.Workflow(&commitMessage).
		ConditionalStep("Type",
			func() bool {
				return commitType == commit.ConventionalType
			},
			func() (any, error) {
				if len(typeOptions) == 0 {
					return prompts.Text(prompts.TextParams{
						Message:      "Enter a type",
						Placeholder:  "<type>",
						InitialValue: commitMessage.Type,
						Validate: func(value string) error {
							if value == "" {
								return errors.New("please enter a type")
							}
							return nil
						},
					})
				}

				return prompts.Select(prompts.SelectParams[string]{
					Message:      "Select a type",
					InitialValue: commitMessage.Type,
					Options:      typeOptions,
				})
			}).
		ConditionalStep("Scope",
			func() bool {
				return commitMessage.Type != ""
			},
			func() (any, error) {
				initialValue := commitMessage.Scope
				if commitMessage.Breaking {
					initialValue += "!"
				}
				// the answer carries the breaking marker from here on
				commitMessage.Breaking = false
				return prompts.Text(prompts.TextParams{
					Message:      "Enter a scope",
					Placeholder:  "<optional scope, append ! for breaking changes>",
					InitialValue: initialValue,
					Validate: func(value string) error {
						return nil
					},
				})
			}).
		Step("CommitMessage", func() (any, error) {
			return prompts.Text(prompts.TextParams{
				Message:      fmt.Sprintf("Enter a message %s", picocolors.Gray(commitType.CommitFormat())),
				Placeholder:  "<message>",
				InitialValue: commitMessage.CommitMessage,
				Validate: func(value string) error {
					if value == "" {
						return errors.New("please enter a message")
					}
					candidate := commitMessage
					candidate.CommitMessage = value
					return firstError(linter, candidate.ToString())
				},
			})
		}).
		Run()
	if err != nil {
		return "", err
	}

	return commitMessage.ToString(), nil
}
