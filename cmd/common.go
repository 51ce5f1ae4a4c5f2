package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/zbiljic/commitlint/internal/config"
	"github.com/zbiljic/commitlint/internal/log"
	"github.com/zbiljic/commitlint/pkg/lint"
)

type (
	ctxKeyClackPromptStarted struct{}
)

func injectIntoCommandContextWithKey[K, V comparable](cmd *cobra.Command, key K, value V) {
	ctx := cmd.Context()
	ctx = context.WithValue(ctx, key, value)
	cmd.SetContext(ctx)
}

// setupGitWorkDir validates and returns the git working directory
func setupGitWorkDir() (string, error) {
	workDir, err := gitWorkingTreeDir(getWd())
	if err != nil {
		return "", errors.New("The current directory must be a Git repository") //nolint:staticcheck
	}
	return workDir, nil
}

// loadConfig loads the config file given with --config, or the first one
// found in the search paths, falling back to the built-in defaults.
func loadConfig() (*config.Config, error) {
	logger := log.WithComponent("cmd")

	if rootFlags.Config != "" {
		logger.Debug().Str("path", rootFlags.Config).Msg("using config from flag")
		return config.LoadFile(rootFlags.Config)
	}

	if path, ok := config.GetPath(); ok {
		logger.Debug().Str("path", path).Msg("using config file")
	}

	return config.Load()
}

// newLinter builds a linter from the loaded configuration.
func newLinter(opts ...lint.Option) (*lint.Linter, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger := log.WithComponent("cmd")
	logger.Debug().Msg(cfg.Describe())

	return lint.New(cfg.Lint(), opts...)
}
