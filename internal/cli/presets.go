package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// newPresetsCommand creates the "presets" group for managing the pallet inventory.
func newPresetsCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage saved pallet presets",
	}

	cmd.AddCommand(
		newPresetsListCommand(opts),
		newPresetsAddCommand(opts),
		newPresetsRemoveCommand(opts),
	)

	return cmd
}

func newPresetsListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pallet presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inv, err := project.LoadInventory(opts.InventoryPath)
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}

			w := cmd.OutOrStdout()
			if opts.Format == formatJSON {
				return writeJSON(w, inv.Pallets)
			}
			tw := newTable(w)
			writeRow(tw, "NAME", "LENGTH", "WIDTH", "MAX HEIGHT", "DECK", "DESCRIPTION")
			for _, p := range inv.Pallets {
				mark := ""
				if p.Name == opts.Config.DefaultPallet {
					mark = " (default)"
				}
				writeRow(tw, p.Name+mark,
					fmt.Sprintf("%.1f", p.Length),
					fmt.Sprintf("%.1f", p.Width),
					fmt.Sprintf("%.1f", p.MaxHeight),
					fmt.Sprintf("%.1f", p.DeckHeight),
					p.Description)
			}
			return tw.Flush()
		},
	}
}

func newPresetsAddCommand(opts *Options) *cobra.Command {
	var (
		length      float64
		width       float64
		maxHeight   float64
		deckHeight  float64
		description string
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a pallet preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			preset := model.NewPalletPreset(args[0], length, width, maxHeight, deckHeight)
			preset.Description = description
			if err := model.ValidateInput(nil, preset.ToPallet()); err != nil {
				return err
			}

			inv, err := project.LoadInventory(opts.InventoryPath)
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}
			if inv.FindPalletByName(preset.Name) != nil {
				return fmt.Errorf("pallet preset %q already exists", preset.Name)
			}
			inv.Pallets = append(inv.Pallets, preset)
			if err := project.SaveInventory(opts.InventoryPath, inv); err != nil {
				return fmt.Errorf("save inventory: %w", err)
			}
			logger.Info("pallet preset added", "name", preset.Name, "id", preset.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&length, "length", 0, "Pallet length in cm")
	cmd.Flags().Float64Var(&width, "width", 0, "Pallet width in cm")
	cmd.Flags().Float64Var(&maxHeight, "max-height", 0, "Maximum load height in cm")
	cmd.Flags().Float64Var(&deckHeight, "deck-height", 0, "Deck height in cm")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")
	_ = cmd.MarkFlagRequired("length")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("max-height")

	return cmd
}

func newPresetsRemoveCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a pallet preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			inv, err := project.LoadInventory(opts.InventoryPath)
			if err != nil {
				return fmt.Errorf("load inventory: %w", err)
			}
			kept := inv.Pallets[:0]
			for _, p := range inv.Pallets {
				if p.Name != args[0] {
					kept = append(kept, p)
				}
			}
			if len(kept) == len(inv.Pallets) {
				return fmt.Errorf("pallet preset %q not found", args[0])
			}
			inv.Pallets = kept
			if err := project.SaveInventory(opts.InventoryPath, inv); err != nil {
				return fmt.Errorf("save inventory: %w", err)
			}
			logger.Info("pallet preset removed", "name", args[0])
			return nil
		},
	}
}
