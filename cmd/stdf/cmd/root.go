package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/gostdf/pkg/config"
	"github.com/ssargent/gostdf/pkg/di"
)

var container *di.Container

// SetContainer injects the dependency container used by every command
func SetContainer(c *di.Container) {
	container = c
}

// newRootCmd builds the command tree. Commands are built per call so flag
// values never leak between executions.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stdf",
		Short: "Read, inspect and rewrite STDF V4 datalogs",
		Long: `stdf reads Standard Test Data Format V4 files produced by semiconductor
testers. Files may be plain or compressed with gzip, bzip2 or zip.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if container == nil {
				return fmt.Errorf("dependency container not initialized")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return container.Configure(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = container.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to config file (default: OS-specific location, if present)")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.String("compression", "", "Input compression: auto, none, gzip, bzip2 or zip")
	flags.StringSliceP("filter", "f", nil, "Record names to read, e.g. PIR,PTR,PRR")

	rootCmd.AddCommand(
		newDumpCmd(),
		newStatsCmd(),
		newRewriteCmd(),
		newIndexCmd(),
		newShowCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file, if any, and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	path, _ := cmd.Flags().GetString("config")
	switch {
	case path != "":
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.ConfigExists(config.GetDefaultConfigPath()):
		loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Override config with command line flags if provided
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("compression") {
		cfg.Input.Compression, _ = cmd.Flags().GetString("compression")
	}
	if cmd.Flags().Changed("filter") {
		cfg.Filter, _ = cmd.Flags().GetStringSlice("filter")
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
