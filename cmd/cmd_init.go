package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zbiljic/commitlint/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long:  fmt.Sprintf(`Writes the default configuration to %s at the root of the current Git repository.`, config.FileName),
	Args:  cobra.NoArgs,
	RunE:  runInitE,
}

var initFlags = initOptions{}

type initOptions struct {
	Force bool
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.Force, "force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

func runInitE(cmd *cobra.Command, args []string) error {
	workDir, err := setupGitWorkDir()
	if err != nil {
		return err
	}

	path := filepath.Join(workDir, config.FileName)
	if err := config.Create(config.NewDefault(), path, initFlags.Force); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
