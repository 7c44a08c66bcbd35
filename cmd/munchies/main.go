package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"munchies/internal/config"
	"munchies/internal/logger"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "munchies",
		Short:         "Render and export the vegetable oil dashboard",
		Version:       config.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(buildExportCmd())
	rootCmd.AddCommand(buildTableCmd())

	return rootCmd
}

// loadConfig reads the environment and applies its log settings
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}
