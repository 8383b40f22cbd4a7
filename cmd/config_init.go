package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kiewb/perspectives/internal/config"
)

var (
	configInitPath  string
	configInitForce bool
)

var configInitCmd = &cobra.Command{
	Use:   "config:init",
	Short: "Write a commented default config file",
	Long: `Write a commented default config file.

The file is written to .perspectives/config.yaml unless --path is given.
An existing file is left alone unless --force is set.`,
	Args: cobra.NoArgs,
	// Skips config loading so a broken config can be replaced.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configInitPath); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configInitPath)
		}
		if err := config.WriteDefaultConfig(configInitPath); err != nil {
			return err
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configInitPath)
		return err
	},
}

func init() {
	configInitCmd.Flags().StringVarP(&configInitPath, "path", "p", config.LocalConfigPath, "Where to write the config file")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing file")
	rootCmd.AddCommand(configInitCmd)
}
