package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appperspectives "github.com/kiewb/perspectives/internal/application/perspectives"
	"github.com/kiewb/perspectives/internal/config"
	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/log"
	"github.com/kiewb/perspectives/internal/presentation"
)

var (
	version = "dev"
	cfgFile string
	debug   bool
	format  string
	cfg     config.Config

	perspectiveService *appperspectives.Service
	closeLog           = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "perspectives",
	Short: "Inspect the workbench perspective registry",
	Long: `Inspect the workbench perspective registry used by the UI test suite.

Lists which perspectives exist in each workbench distribution, the menu used to
reach them, the page object modelling them, and the IDs used to name
parametrized test cases.`,
	Version:            version,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/perspectives/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"write debug logs (also PERSPECTIVES_DEBUG=true)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", "",
		"output format: json, yaml or table (default from config)")
}

// setup loads configuration, enables logging and builds the service shared by subcommands.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(viper.New(), cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		loaded.Format = format
	}
	if cmd.Flags().Changed("debug") {
		loaded.Debug = debug
	}
	if err := config.Validate(loaded); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	if cfg.Debug {
		cleanup, err := log.Init(cfg.Log.Path)
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		closeLog = cleanup
		level, _ := log.ParseLevel(cfg.Log.Level)
		log.SetMinLevel(level)
		log.SetEnabled(true)
	} else {
		log.SetEnabled(false)
	}
	log.Debug(log.CatCLI, "running command", "cmd", cmd.Name(), "distribution", cfg.Distribution, "format", cfg.Format)

	opts := []appperspectives.Option{appperspectives.WithTTL(cfg.Cache.TTL)}
	if !cfg.Cache.Enabled {
		opts = append(opts, appperspectives.WithoutCache())
	}
	perspectiveService = appperspectives.NewCatalogService(opts...)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	closeLog()
	closeLog = func() {}
	return nil
}

// newFormatter returns a formatter for the configured output format.
func newFormatter(cmd *cobra.Command) *presentation.Formatter {
	f, _ := presentation.ParseFormat(cfg.Format)
	return presentation.NewFormatter(cmd.OutOrStdout(), f)
}

// resolveDistribution parses flagValue, falling back to the configured distribution.
func resolveDistribution(flagValue string) (distribution.Distribution, error) {
	if flagValue == "" {
		flagValue = cfg.Distribution
	}
	return distribution.Parse(flagValue)
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.ErrorErr(log.CatCLI, "command failed", err)
		closeLog()
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
