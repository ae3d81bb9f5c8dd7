package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newPlanCommand creates "plan" that spreads boxes over as many identical
// pallets as needed.
func newPlanCommand(opts *Options) *cobra.Command {
	var (
		source     boxSource
		pallet     palletFlags
		exports    exportFlags
		timeout    time.Duration
		maxPallets int
	)

	cmd := &cobra.Command{
		Use:   "plan [FILE]",
		Short: "Spread boxes over several pallets",
		Long:  "Load pallet after pallet with the remaining boxes until everything is placed, a pallet stays empty, or --max-pallets is reached.",
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

			plan, err := newOptimizer(logger).PlanLoads(ctx, in.Boxes, p, maxPallets)
			if err != nil {
				return fmt.Errorf("plan: %w", err)
			}
			logger.Info("plan complete", "pallets", plan.PalletCount(), "placed", plan.PlacedCount(), "unplaced", len(plan.Unplaced))
			if len(plan.Unplaced) > 0 {
				logger.Warn("not all boxes could be placed", "unplaced", len(plan.Unplaced))
			}

			if err := exports.write(logger, opts, plan); err != nil {
				return err
			}
			return printPlan(cmd.OutOrStdout(), opts.Format, plan)
		},
	}

	source.register(cmd)
	pallet.register(cmd)
	exports.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the run after this long (0 = no limit)")
	cmd.Flags().IntVar(&maxPallets, "max-pallets", 0, "Stop after this many pallets (0 = no limit)")

	return cmd
}
