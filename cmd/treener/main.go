// Command treener annotates parse tree files with named entity labels.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cognicore/treener/pkg/treener/config"
)

// app holds the state shared by the subcommands.
type app struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "treener",
		Short: "Named entity labeling for parse trees",
		Long: `treener labels the leaves of bracketed parse trees as PERSON, LOCATION,
ORGANIZATION, MONEY, TIME or NONE, and stores the annotated trees.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zcfg := zap.NewProductionConfig()
			if a.verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file (default: built-in Turkish settings)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(a.annotateCmd())
	rootCmd.AddCommand(a.showCmd())
	rootCmd.AddCommand(a.listCmd())

	return rootCmd
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(a.configPath)
}
