package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/engine"
	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// newOptimizeCommand creates "optimize" that loads one pallet and reports the
// placement sequence.
func newOptimizeCommand(opts *Options) *cobra.Command {
	var (
		source  boxSource
		pallet  palletFlags
		exports exportFlags
		timeout time.Duration
		save    string
	)

	cmd := &cobra.Command{
		Use:   "optimize [FILE]",
		Short: "Place boxes onto a single pallet",
		Long:  "Place boxes from a CSV/Excel box list, a project file or a template onto a single pallet, heaviest first. Boxes that do not fit are reported as unplaced.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			in, err := source.load(logger, opts, args)
			if err != nil {
				return err
			}
			p, err := pallet.resolve(opts, in.Pallet)
			if err != nil {
				return err
			}

			ctx, cancel := commandContext(cmd.Context(), timeout)
			defer cancel()

			logger.Info("optimizing", "boxes", len(in.Boxes), "length", p.Length, "width", p.Width, "max_height", p.MaxHeight)
			start := time.Now()
			result, err := newOptimizer(logger).OptimizeContext(ctx, in.Boxes, p)
			if err != nil {
				return fmt.Errorf("optimize: %w", err)
			}
			logger.Info("optimization complete", "placed", len(result.Placed), "unplaced", len(result.Unplaced), "elapsed", time.Since(start))
			if len(result.Unplaced) > 0 {
				logger.Warn("not all boxes could be placed", "unplaced", len(result.Unplaced))
			}

			plan := model.SinglePlan(p, result)
			if err := exports.write(logger, opts, plan); err != nil {
				return err
			}
			if save != "" {
				proj := model.Project{Name: in.Name, Pallet: p, Boxes: in.Boxes, Result: &result}
				if err := saveProject(logger, opts, save, proj); err != nil {
					return err
				}
			}
			return printPlan(cmd.OutOrStdout(), opts.Format, plan)
		},
	}

	source.register(cmd)
	pallet.register(cmd)
	exports.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the run after this long (0 = no limit)")
	cmd.Flags().StringVar(&save, "save", "", "Save boxes, pallet and result as a project file (.json, .yaml)")

	return cmd
}

func newOptimizer(logger *slog.Logger) *engine.Optimizer {
	return engine.New(model.DefaultSettings(), engine.WithLogger(logger))
}

// commandContext derives a context that is cancelled after timeout, or only
// on parent cancellation when timeout is zero.
func commandContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// saveProject writes proj and records it in the recent project list.
func saveProject(logger *slog.Logger, opts *Options, path string, proj model.Project) error {
	if err := project.SaveProject(path, proj); err != nil {
		return err
	}
	opts.Config.AddRecentProject(path, recentProjectLimit)
	if err := project.SaveAppConfig(opts.ConfigPath, opts.Config); err != nil {
		return fmt.Errorf("update recent projects: %w", err)
	}
	logger.Info("project saved", "path", path)
	return nil
}
