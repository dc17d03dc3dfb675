package main

import (
	"fmt"
	"os"

	"github.com/quantmind-br/bunmigrate/internal/config"
	"github.com/quantmind-br/bunmigrate/internal/filter"
	"github.com/quantmind-br/bunmigrate/internal/transform"
	"github.com/quantmind-br/bunmigrate/internal/utils"
	"github.com/quantmind-br/bunmigrate/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var verbose bool

func main() {
	// Failures are already reported on stderr by the pipeline, so the
	// exit code is the only thing left to communicate.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bunscripts",
	Short: "Rewrite package.json scripts for bun and Biome",
	Long: `bunscripts is a filter that reads a package.json manifest from standard
input, rewrites its scripts section for a bun + Biome toolchain, and writes
the updated manifest to standard output as indented JSON.

The build, lint, lint:fix, format, and format:fix aliases are set to their
bun/biome commands and the obsolete lint:format alias is removed. Every
other manifest field passes through untouched, in its original order.

Usage:
  bunscripts < package.json > package.new.json`,
	Version:       version.Short(),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return fmt.Errorf("failed to load settings: %w", err)
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   settings.Logging.Level,
		Format:  settings.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: settings.Verbose || verbose,
	})

	pipe := filter.New(filter.Options{
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Diag:      cmd.ErrOrStderr(),
		Transform: transform.Scripts,
		Logger:    log.WithFilter("bunscripts"),
	})
	return pipe.Run(cmd.Context())
}
