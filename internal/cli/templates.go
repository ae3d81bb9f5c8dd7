package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// newTemplatesCommand creates the "templates" group for reusable box lists.
func newTemplatesCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage reusable box list templates",
	}

	cmd.AddCommand(
		newTemplatesListCommand(opts),
		newTemplatesSaveCommand(opts),
		newTemplatesRemoveCommand(opts),
	)

	return cmd
}

func newTemplatesListCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := project.LoadTemplates(opts.TemplatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}

			w := cmd.OutOrStdout()
			if opts.Format == formatJSON {
				return writeJSON(w, store.Templates)
			}
			tw := newTable(w)
			writeRow(tw, "NAME", "BOXES", "PALLET (L x W x H)", "UPDATED", "DESCRIPTION")
			for _, t := range store.Templates {
				p := t.Pallet
				writeRow(tw, t.Name,
					fmt.Sprintf("%d", len(t.Boxes)),
					fmt.Sprintf("%.1f x %.1f x %.1f", p.Length, p.Width, p.MaxHeight),
					t.UpdatedAt,
					t.Description)
			}
			return tw.Flush()
		},
	}
}

func newTemplatesSaveCommand(opts *Options) *cobra.Command {
	var (
		pallet      palletFlags
		description string
	)

	cmd := &cobra.Command{
		Use:   "save NAME FILE",
		Short: "Save a box file as a template, replacing any template with the same name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			in, err := loadBoxFile(logger, args[1])
			if err != nil {
				return err
			}
			p, err := pallet.resolve(opts, in.Pallet)
			if err != nil {
				return err
			}
			if err := model.ValidateInput(in.Boxes, p); err != nil {
				return err
			}

			store, err := project.LoadTemplates(opts.TemplatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			store.Add(model.NewProjectTemplate(args[0], description, p, in.Boxes))
			if err := project.SaveTemplates(opts.TemplatePath, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			logger.Info("template saved", "name", args[0], "boxes", len(in.Boxes))
			return nil
		},
	}

	pallet.register(cmd)
	cmd.Flags().StringVar(&description, "description", "", "Free-form description")

	return cmd
}

func newTemplatesRemoveCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			store, err := project.LoadTemplates(opts.TemplatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			tmpl := store.FindByName(args[0])
			if tmpl == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			store.Remove(tmpl.ID)
			if err := project.SaveTemplates(opts.TemplatePath, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			logger.Info("template removed", "name", args[0])
			return nil
		},
	}
}
