package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/project"
)

// newBackupCommand creates the "backup" group that moves config, presets
// and templates in and out of a single file.
func newBackupCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore config, pallet presets and templates",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "export PATH",
			Short: "Write all application data to a backup file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				logger := LoggerFromContext(cmd.Context())

				inv, err := project.LoadInventory(opts.InventoryPath)
				if err != nil {
					return fmt.Errorf("load inventory: %w", err)
				}
				store, err := project.LoadTemplates(opts.TemplatePath)
				if err != nil {
					return fmt.Errorf("load templates: %w", err)
				}
				if err := project.ExportAllData(args[0], opts.Config, inv, store); err != nil {
					return err
				}
				logger.Info("backup written", "path", args[0], "presets", len(inv.Pallets), "templates", len(store.Templates))
				return nil
			},
		},
		&cobra.Command{
			Use:   "import PATH",
			Short: "Replace config, presets and templates with a backup file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				logger := LoggerFromContext(cmd.Context())

				backup, err := project.ImportAllData(args[0])
				if err != nil {
					return err
				}
				if err := project.SaveAppConfig(opts.ConfigPath, backup.Config); err != nil {
					return fmt.Errorf("save config: %w", err)
				}
				if err := project.SaveInventory(opts.InventoryPath, backup.Inventory); err != nil {
					return fmt.Errorf("save inventory: %w", err)
				}
				if err := project.SaveTemplates(opts.TemplatePath, backup.Templates); err != nil {
					return fmt.Errorf("save templates: %w", err)
				}
				logger.Info("backup restored", "path", args[0], "version", backup.Version, "created_at", backup.CreatedAt)
				return nil
			},
		},
	)

	return cmd
}
