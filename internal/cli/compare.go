package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/engine"
	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// comparisonRow is the JSON form of one compared pallet preset.
type comparisonRow struct {
	Name    string            `json:"name"`
	Pallet  model.Pallet      `json:"pallet"`
	Summary model.LoadSummary `json:"summary"`
	Best    bool              `json:"best"`
}

// newCompareCommand creates "compare" that runs the same boxes on every
// pallet preset in the inventory.
func newCompareCommand(opts *Options) *cobra.Command {
	var (
		source  boxSource
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "compare [FILE]",
		Short: "Compare how the boxes load on every pallet preset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			in, err := source.load(logger, opts, args)
			if err != nil {
				return err
			}
			inv, err := project.LoadInventory(opts.InventoryPath)
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}
			scenarios := engine.ScenariosFromInventory(inv)
			if len(scenarios) == 0 {
				return fmt.Errorf("inventory %s has no pallet presets", opts.InventoryPath)
			}

			ctx, cancel := commandContext(cmd.Context(), timeout)
			defer cancel()

			results, err := newOptimizer(logger).ComparePallets(ctx, scenarios, in.Boxes)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			best := engine.BestScenario(results)
			logger.Info("comparison complete", "scenarios", len(results), "best", results[best].Scenario.Name)

			rows := make([]comparisonRow, len(results))
			for i, r := range results {
				rows[i] = comparisonRow{Name: r.Scenario.Name, Pallet: r.Scenario.Pallet, Summary: r.Summary, Best: i == best}
			}

			w := cmd.OutOrStdout()
			if opts.Format == formatJSON {
				return writeJSON(w, rows)
			}
			tw := newTable(w)
			writeRow(tw, "PALLET", "SIZE (L x W x H)", "PLACED", "UNPLACED", "UTILIZATION", "LOAD HEIGHT", "BEST")
			for _, r := range rows {
				mark := ""
				if r.Best {
					mark = "*"
				}
				p := r.Pallet
				writeRow(tw, r.Name,
					fmt.Sprintf("%.1f x %.1f x %.1f", p.Length, p.Width, p.MaxHeight),
					fmt.Sprintf("%d", r.Summary.PlacedCount),
					fmt.Sprintf("%d", r.Summary.UnplacedCount),
					fmt.Sprintf("%.1f%%", r.Summary.Utilization),
					fmt.Sprintf("%.1f", r.Summary.LoadHeight),
					mark)
			}
			return tw.Flush()
		},
	}

	source.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the comparison after this long (0 = no limit)")

	return cmd
}
