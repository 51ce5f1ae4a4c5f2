package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zbiljic/commitlint/internal/config"
	"github.com/zbiljic/commitlint/pkg/lint"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long:  `Prints the configuration with all extended rule sets merged in, as JSON.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigE,
}

var configFlags = configOptions{}

type configOptions struct {
	Raw   bool
	Paths bool
}

func init() {
	configCmd.Flags().BoolVar(&configFlags.Raw, "raw", false, "Print the configuration as written, without resolving extends")
	configCmd.Flags().BoolVar(&configFlags.Paths, "paths", false, "Print the paths searched for a config file")

	rootCmd.AddCommand(configCmd)
}

func runConfigE(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if configFlags.Paths {
		for _, path := range config.GetSearchPaths() {
			fmt.Fprintln(out, path)
		}
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result := cfg.Lint()
	if !configFlags.Raw {
		if result, err = lint.Resolve(result); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(out, string(data))
	return nil
}
