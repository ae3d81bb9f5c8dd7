package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/model"
)

// newEstimateCommand creates "estimate" that predicts the pallet count by
// volume without running the optimizer.
func newEstimateCommand(opts *Options) *cobra.Command {
	var (
		source boxSource
		pallet palletFlags
		fill   float64
	)

	cmd := &cobra.Command{
		Use:   "estimate [FILE]",
		Short: "Estimate how many pallets a box list needs",
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

			est := model.EstimatePallets(in.Boxes, p, fill)
			w := cmd.OutOrStdout()
			if opts.Format == formatJSON {
				return writeJSON(w, est)
			}

			tw := newTable(w)
			writeRow(tw, "Boxes", fmt.Sprintf("%d", est.BoxCount))
			writeRow(tw, "Total volume", fmt.Sprintf("%.0f cm³", est.TotalBoxVolume))
			writeRow(tw, "Total weight", fmt.Sprintf("%.1f kg", est.TotalWeight))
			writeRow(tw, "Pallet volume", fmt.Sprintf("%.0f cm³", est.PalletVolume))
			writeRow(tw, "Pallets (exact)", fmt.Sprintf("%.2f", est.PalletsNeededExact))
			writeRow(tw, "Pallets (minimum)", fmt.Sprintf("%d", est.PalletsNeededMin))
			writeRow(tw, fmt.Sprintf("Pallets (at %.0f%% fill)", est.FillPercent), fmt.Sprintf("%d", est.PalletsWithSlack))
			return tw.Flush()
		},
	}

	source.register(cmd)
	pallet.register(cmd)
	cmd.Flags().Float64Var(&fill, "fill", 75, "Expected volume fill rate in percent")

	return cmd
}
