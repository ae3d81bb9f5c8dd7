package export

import (
	"fmt"

	"github.com/piwi3910/PalletLoad/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
)

// DXF layer names.
const (
	layerPallet = "PALLET"
	layerBoxes  = "BOXES"
	layerSteps  = "STEPS"
)

// palletSpacing is the gap in cm between pallets laid out side by side.
const palletSpacing = 50.0

// ExportDXF writes a 3D wireframe of the load plan. CAD Z is up: pallet
// length maps to X, pallet width to Y and load height to Z. Pallets are laid
// out along X. Each box is drawn as its 12 edges with the step number at
// its top centre.
func ExportDXF(path string, plan model.LoadPlan) error {
	if plan.PalletCount() == 0 {
		return fmt.Errorf("no pallets to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer(layerPallet, color.Yellow, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerPallet, err)
	}
	if _, err := d.AddLayer(layerSteps, color.White, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerSteps, err)
	}
	if _, err := d.AddLayer(layerBoxes, color.Cyan, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add layer %s: %w", layerBoxes, err)
	}

	p := plan.Pallet
	for i, load := range plan.Loads {
		ox := float64(i) * (p.Length + palletSpacing)

		if err := d.ChangeLayer(layerPallet); err != nil {
			return err
		}
		if err := drawCuboid(d, ox, 0, 0, p.Length, p.Width, p.MaxHeight); err != nil {
			return fmt.Errorf("failed to draw pallet %d: %w", i+1, err)
		}
		if _, err := d.Text(fmt.Sprintf("Pallet %d", i+1), ox, -10, 0, 5); err != nil {
			return fmt.Errorf("failed to label pallet %d: %w", i+1, err)
		}

		for step, b := range load {
			o := b.Orientation
			if err := d.ChangeLayer(layerBoxes); err != nil {
				return err
			}
			if err := drawCuboid(d, ox+b.X, b.Z, b.Y, o.Length, o.Width, o.Height); err != nil {
				return fmt.Errorf("failed to draw box %s: %w", b.Box.ID, err)
			}

			if err := d.ChangeLayer(layerSteps); err != nil {
				return err
			}
			cx := ox + b.X + o.Length/2
			cy := b.Z + o.Width/2
			if _, err := d.Text(fmt.Sprintf("%d", step+1), cx, cy, b.Top(), 3); err != nil {
				return fmt.Errorf("failed to label box %s: %w", b.Box.ID, err)
			}
		}
	}

	return d.SaveAs(path)
}

// drawCuboid draws the 12 edges of an axis-aligned box with its minimum
// corner at (x, y, z) in CAD coordinates.
func drawCuboid(d *drawing.Drawing, x, y, z, dx, dy, dz float64) error {
	corners := [8][3]float64{
		{x, y, z}, {x + dx, y, z}, {x + dx, y + dy, z}, {x, y + dy, z},
		{x, y, z + dz}, {x + dx, y, z + dz}, {x + dx, y + dy, z + dz}, {x, y + dy, z + dz},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
	}
	for _, e := range edges {
		a, b := corners[e[0]], corners[e[1]]
		if _, err := d.Line(a[0], a[1], a[2], b[0], b[1], b[2]); err != nil {
			return err
		}
	}
	return nil
}
