// Package commands implements the robotdb CLI.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mattbot/robotdb/internal/config"
)

var (
	dbPath   string
	logLevel string
)

// NewRootCmd assembles the robotdb command tree.
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "robotdb",
		Short: "Store and query a robot's goals and detected objects",
		Long: `robotdb keeps a mobile robot's navigation goals and sensor detections
in a single-file SQLite database and queries them back out.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(logLevel)})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DatabasePath, "Path to the SQLite database file")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		NewInitCmd(),
		NewAddGoalCmd(),
		NewLatestGoalCmd(),
		NewGoalHistoryCmd(),
		NewAddObjectCmd(),
		NewRecentObjectsCmd(),
		NewExportCmd(),
		NewSimulateCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func parseLevel(level string) slog.Leveler {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return lvl
}
