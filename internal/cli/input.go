package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/importer"
	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/piwi3910/PalletLoad/internal/project"
)

// boxInput is a loaded box list plus the pallet and name a project file
// carried, if any.
type boxInput struct {
	Name   string
	Boxes  []model.BoxSpec
	Pallet *model.Pallet
}

// isProjectFile reports whether path holds a saved project rather than a
// spreadsheet box list.
func isProjectFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || project.IsYAML(path)
}

// loadBoxFile reads boxes from a project file (.json, .yaml, .yml) or a box
// list (.csv, .tsv, .txt, .xlsx, .xlsm). Import warnings are logged; import
// errors fail the load.
func loadBoxFile(logger *slog.Logger, path string) (boxInput, error) {
	if isProjectFile(path) {
		proj, err := project.LoadProject(path)
		if err != nil {
			return boxInput{}, err
		}
		pallet := proj.Pallet
		return boxInput{Name: proj.Name, Boxes: proj.Boxes, Pallet: &pallet}, nil
	}

	res := importer.ImportFile(path)
	for _, w := range res.Warnings {
		logger.Warn("import warning", "file", path, "warning", w)
	}
	if len(res.Errors) > 0 {
		return boxInput{}, fmt.Errorf("import %s: %s", path, strings.Join(res.Errors, "; "))
	}
	logger.Debug("boxes imported", "file", path, "count", len(res.Boxes))

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return boxInput{Name: name, Boxes: res.Boxes}, nil
}

// boxSource selects the box list for a command: a file argument or a saved
// template.
type boxSource struct {
	template string
}

func (s *boxSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.template, "template", "", "Use a saved template instead of a box file")
}

func (s *boxSource) load(logger *slog.Logger, opts *Options, args []string) (boxInput, error) {
	switch {
	case s.template != "" && len(args) > 0:
		return boxInput{}, fmt.Errorf("give either a box file or --template, not both")
	case s.template != "":
		store, err := project.LoadTemplates(opts.TemplatePath)
		if err != nil {
			return boxInput{}, fmt.Errorf("load templates: %w", err)
		}
		tmpl := store.FindByName(s.template)
		if tmpl == nil {
			return boxInput{}, fmt.Errorf("template %q not found", s.template)
		}
		proj := tmpl.ToProject(tmpl.Name)
		pallet := proj.Pallet
		return boxInput{Name: proj.Name, Boxes: proj.Boxes, Pallet: &pallet}, nil
	case len(args) == 1:
		return loadBoxFile(logger, args[0])
	default:
		return boxInput{}, fmt.Errorf("a box file or --template is required")
	}
}

// palletFlags selects the pallet for a command. An explicit preset wins over
// a project's pallet, which wins over the configured default; dimension
// flags override whatever was selected.
type palletFlags struct {
	preset    string
	length    float64
	width     float64
	maxHeight float64
}

func (f *palletFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "pallet", "p", "", "Pallet preset name from the inventory")
	cmd.Flags().Float64Var(&f.length, "length", 0, "Pallet length in cm (overrides the preset)")
	cmd.Flags().Float64Var(&f.width, "width", 0, "Pallet width in cm (overrides the preset)")
	cmd.Flags().Float64Var(&f.maxHeight, "max-height", 0, "Maximum load height in cm (overrides the preset)")
}

func (f *palletFlags) resolve(opts *Options, fallback *model.Pallet) (model.Pallet, error) {
	var pallet model.Pallet
	switch {
	case f.preset != "":
		inv, err := project.LoadInventory(opts.InventoryPath)
		if err != nil {
			return model.Pallet{}, fmt.Errorf("load inventory: %w", err)
		}
		preset := inv.FindPalletByName(f.preset)
		if preset == nil {
			return model.Pallet{}, fmt.Errorf("pallet preset %q not found (have: %s)", f.preset, strings.Join(inv.PalletNames(), ", "))
		}
		pallet = preset.ToPallet()
	case fallback != nil:
		pallet = *fallback
	default:
		inv, err := project.LoadInventory(opts.InventoryPath)
		if err != nil {
			return model.Pallet{}, fmt.Errorf("load inventory: %w", err)
		}
		p, ok := opts.Config.ResolvePallet(inv)
		if !ok {
			p = model.DefaultInventory().Pallets[0].ToPallet()
		}
		pallet = p
	}

	if f.length > 0 {
		pallet.Length = f.length
	}
	if f.width > 0 {
		pallet.Width = f.width
	}
	if f.maxHeight > 0 {
		pallet.MaxHeight = f.maxHeight
	}
	return pallet, nil
}
