package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sandbox/internal/config"
	"sandbox/internal/logging"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	timeout    = 30 * time.Second

	// Resolved at startup
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "sandbox - assistant walkthrough and sample routines",
	Long: `sandbox ships the assistant walkthrough (Chat, Edit, Autocomplete, Agent)
together with the sample code it is built around: a bubble sort, a chained
accumulator and the manual-testing calculator.

Run "sandbox tutorial" to read the walkthrough.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var c *config.Config
		if cmd == initCmd {
			// init must work even when the existing config is broken.
			c = config.DefaultConfig()
		} else {
			var err error
			if c, err = loadConfig(); err != nil {
				return err
			}
		}

		l, err := logging.Build(c.Logging, resolveWorkspace(), verbose)
		if err != nil {
			return err
		}
		logger = l
		logging.Initialize(logger, c.Logging)

		logging.Get(logging.CategoryBoot).Debug("config resolved",
			zap.String("workspace", resolveWorkspace()),
			zap.Bool("history", c.History.Enabled))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config to .sandbox/config.yaml",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var forceInit bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.sandbox/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(accumulateCmd)
	rootCmd.AddCommand(tutorialCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveWorkspace returns the workspace flag or the current directory.
func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	cwd, _ := os.Getwd()
	return cwd
}

// loadConfig loads and caches the config for this invocation.
func loadConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	path := configPath
	if path == "" {
		path = config.DefaultPath(resolveWorkspace())
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg = c
	return cfg, nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath(resolveWorkspace())
	}

	if _, err := os.Stat(path); err == nil && !forceInit {
		fmt.Fprintf(cmd.OutOrStdout(), "Config already exists at %s (use --force to overwrite)\n", path)
		return nil
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("wrote default config", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// commandContext returns a context bounded by the --timeout flag.
func commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
