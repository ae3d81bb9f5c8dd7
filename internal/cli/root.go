// Package cli defines the command-line interface for palletload.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/logging"
	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

const (
	formatTable = "table"
	formatJSON  = "json"

	// recentProjectLimit caps the recent project list kept in the config.
	recentProjectLimit = 10
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath    string
	InventoryPath string
	TemplatePath  string
	LogLevel      logging.Level
	Format        string

	// Config is loaded from ConfigPath before any command runs.
	Config model.AppConfig
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	rootOpts := &Options{
		ConfigPath:    project.DefaultConfigPath(),
		InventoryPath: project.DefaultInventoryPath(),
		TemplatePath:  project.DefaultTemplatePath(),
		LogLevel:      logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "palletload",
		Short:         "palletload plans how boxes are stacked on a pallet",
		Long:          "palletload places a list of boxes onto one or more pallets with a deterministic extreme-point heuristic and exports loading guides, labels and drawings.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := project.LoadAppConfig(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config %s: %w", opts.ConfigPath, err)
			}
			opts.Config = cfg

			levelFlag := cmd.Flag("log-level").Value.String()
			if levelFlag == "" {
				levelFlag = cfg.LogLevel
			}
			level := logging.ParseLevel(levelFlag)
			opts.LogLevel = level

			format := strings.ToLower(cmd.Flag("format").Value.String())
			if format == "" {
				format = strings.ToLower(cfg.OutputFormat)
			}
			switch format {
			case "":
				format = formatTable
			case formatTable, formatJSON:
			default:
				return fmt.Errorf("unsupported output format %q (use table or json)", format)
			}
			opts.Format = format

			logger = logging.NewLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level, "config", opts.ConfigPath)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Path to the application config file")
	cmd.PersistentFlags().StringVar(&opts.InventoryPath, "inventory", opts.InventoryPath, "Path to the pallet preset inventory")
	cmd.PersistentFlags().StringVar(&opts.TemplatePath, "templates", opts.TemplatePath, "Path to the project template store")
	cmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to the config value")
	cmd.PersistentFlags().StringP("format", "o", "", "Output format (table, json); defaults to the config value")

	cmd.AddCommand(
		newOptimizeCommand(opts),
		newPlanCommand(opts),
		newCompareCommand(opts),
		newEstimateCommand(opts),
		newVerifyCommand(opts),
		newPresetsCommand(opts),
		newTemplatesCommand(opts),
		newBackupCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
