package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/waterjug/internal/config"
	"github.com/aretw0/waterjug/internal/logging"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "waterjug",
	Short: "Waterjug solves the two jug measuring puzzle",
	Long: `Waterjug finds the shortest sequence of fill, empty and pour actions
that leaves an exact amount of water in one of two jugs.

Use it directly from the shell, serve it over HTTP or expose it to AI agents over MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			loaded.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		level, err := logging.ParseLevel(loaded.LogLevel)
		if err != nil {
			return err
		}

		cfg = loaded
		logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
		slog.SetDefault(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")
}
