package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/piwi3910/PalletLoad/internal/export"
	"github.com/piwi3910/PalletLoad/internal/model"
)

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeRow(tw *tabwriter.Writer, cells ...string) {
	fmt.Fprintln(tw, strings.Join(cells, "\t"))
}

var guideHeader = []string{"STEP", "BOX", "DIMENSIONS (L x W x H)", "WEIGHT", "POSITION (x, y, z)", "ROTATED"}

// printPlan writes a load plan in the selected format. Table output lists
// each pallet's summary and placement guide, then the unplaced boxes.
func printPlan(w io.Writer, format string, plan model.LoadPlan) error {
	if format == formatJSON {
		return writeJSON(w, export.NewPlanDocument(plan))
	}

	p := plan.Pallet
	fmt.Fprintf(w, "Pallet %.1f x %.1f cm, max load height %.1f cm\n", p.Length, p.Width, p.MaxHeight)
	if plan.PalletCount() == 0 {
		fmt.Fprintln(w, "No boxes placed.")
	}

	for i, load := range plan.Loads {
		s := model.Summarize(model.PlacementResult{Placed: load}, p)
		fmt.Fprintf(w, "\nPallet %d: %d boxes, %.1f kg, %.1f%% utilization, load height %.1f cm\n",
			i+1, s.PlacedCount, s.PlacedWeight, s.Utilization, s.LoadHeight)

		tw := newTable(w)
		writeRow(tw, guideHeader...)
		for step, pb := range load {
			writeRow(tw, export.GuideRow(step+1, pb)...)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(plan.Unplaced) > 0 {
		fmt.Fprintf(w, "\nUnplaced (%d):\n", len(plan.Unplaced))
		tw := newTable(w)
		writeRow(tw, "BOX", "DIMENSIONS (L x W x H)", "WEIGHT")
		for _, b := range plan.Unplaced {
			name := b.Name
			if name == "" {
				name = b.ID
			}
			writeRow(tw, name, fmt.Sprintf("%.1f x %.1f x %.1f", b.Length, b.Width, b.Height), fmt.Sprintf("%.1f kg", b.Weight))
		}
		return tw.Flush()
	}
	return nil
}

// exportFlags are the file outputs shared by optimize and plan.
type exportFlags struct {
	pdf    string
	labels string
	dxf    string
	xlsx   string
	json   string
	paper  string
}

func (f *exportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pdf, "pdf", "", "Write a PDF load plan to this path")
	cmd.Flags().StringVar(&f.labels, "labels", "", "Write printable box labels (PDF) to this path")
	cmd.Flags().StringVar(&f.dxf, "dxf", "", "Write a 3D DXF drawing to this path")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "Write an Excel placement guide to this path")
	cmd.Flags().StringVar(&f.json, "json", "", "Write the plan as JSON to this path")
	cmd.Flags().StringVar(&f.paper, "paper", "", "PDF paper size (A4, Letter); defaults to the config value")
}

// write produces every requested export for plan.
func (f *exportFlags) write(logger *slog.Logger, opts *Options, plan model.LoadPlan) error {
	paper := f.paper
	if paper == "" {
		paper = opts.Config.PaperSize
	}

	exports := []struct {
		kind string
		path string
		fn   func(string, model.LoadPlan) error
	}{
		{"pdf", f.pdf, func(path string, plan model.LoadPlan) error { return export.ExportPDF(path, plan, paper) }},
		{"labels", f.labels, export.ExportLabels},
		{"dxf", f.dxf, export.ExportDXF},
		{"xlsx", f.xlsx, export.ExportExcel},
		{"json", f.json, export.ExportJSON},
	}
	for _, e := range exports {
		if e.path == "" {
			continue
		}
		if err := e.fn(e.path, plan); err != nil {
			return fmt.Errorf("export %s: %w", e.kind, err)
		}
		logger.Info("export written", "kind", e.kind, "path", e.path)
	}
	return nil
}
