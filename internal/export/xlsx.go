package export

import (
	"fmt"

	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/xuri/excelize/v2"
)

// Worksheet names used by ExportExcel.
const (
	sheetGuide    = "Placement Guide"
	sheetSummary  = "Summary"
	sheetUnplaced = "Unplaced"
)

// ExportExcel writes the load plan as a workbook with a placement guide
// (one row per box, pallet by pallet in loading order), a per-pallet
// summary and the list of unplaced boxes.
func ExportExcel(path string, plan model.LoadPlan) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetGuide); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheetGuide, err)
	}
	for _, name := range []string{sheetSummary, sheetUnplaced} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	guide := [][]interface{}{{
		"Pallet", "Step", "ID", "Name", "Length", "Width", "Height", "Weight", "X", "Y", "Z", "Rotated",
	}}
	for i, load := range plan.Loads {
		for step, p := range load {
			o := p.Orientation
			guide = append(guide, []interface{}{
				i + 1, step + 1, p.Box.ID, p.Box.Name,
				o.Length, o.Width, o.Height, p.Box.Weight,
				p.X, p.Y, p.Z, p.Rotated(),
			})
		}
	}

	summary := [][]interface{}{{
		"Pallet", "Boxes", "Weight", "Load Height", "Utilization %", "CoG X", "CoG Y", "CoG Z",
	}}
	for i := range plan.Loads {
		s := model.Summarize(model.PlacementResult{Placed: plan.Loads[i]}, plan.Pallet)
		cog := s.CenterOfGravity
		summary = append(summary, []interface{}{
			i + 1, s.PlacedCount, s.PlacedWeight, s.LoadHeight, s.Utilization, cog.X, cog.Y, cog.Z,
		})
	}

	unplaced := [][]interface{}{{"ID", "Name", "Length", "Width", "Height", "Weight"}}
	for _, b := range plan.Unplaced {
		unplaced = append(unplaced, []interface{}{b.ID, b.Name, b.Length, b.Width, b.Height, b.Weight})
	}

	for _, sheet := range []struct {
		name string
		rows [][]interface{}
	}{
		{sheetGuide, guide},
		{sheetSummary, summary},
		{sheetUnplaced, unplaced},
	} {
		if err := writeRows(f, sheet.name, sheet.rows, header); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// writeRows fills a sheet from A1 and styles the first row as a header.
func writeRows(f *excelize.File, sheet string, rows [][]interface{}, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}
	return nil
}
