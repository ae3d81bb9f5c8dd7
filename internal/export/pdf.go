// Package export provides functionality for exporting pallet load plans
// to various file formats.
package export

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/PalletLoad/internal/model"
)

// Page layout constants in mm.
const (
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	captionSpace = 6.0
	viewGap      = 10.0
	rowHeight    = 6.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// page is a landscape page size in mm.
type page struct {
	name          string
	width, height float64
}

// landscapePage returns the fpdf size name and landscape dimensions for a
// paper setting. Anything but "Letter" is A4.
func landscapePage(paper string) page {
	if strings.EqualFold(paper, "letter") {
		return page{name: "Letter", width: 279.4, height: 215.9}
	}
	return page{name: "A4", width: 297.0, height: 210.0}
}

// view is one orthographic projection of the load.
type view int

const (
	viewTop view = iota
	viewFront
	viewSide
)

func (v view) String() string {
	switch v {
	case viewTop:
		return "Top (looking down)"
	case viewFront:
		return "Front (length x height)"
	default:
		return "Side (width x height)"
	}
}

// rect is a projected box in pallet units. depth orders drawing: lower
// values are painted first and end up behind.
type rect struct {
	step       int
	u, v, w, h float64
	depth      float64
}

// projectBox maps a placed box onto a view. Front looks along +z from the
// z=0 face; side looks along +x from the x=0 face.
func projectBox(p model.PlacedBox, v view) rect {
	o := p.Orientation
	switch v {
	case viewTop:
		return rect{u: p.X, v: p.Z, w: o.Length, h: o.Width, depth: p.Top()}
	case viewFront:
		return rect{u: p.X, v: p.Y, w: o.Length, h: o.Height, depth: -p.Z}
	default:
		return rect{u: p.Z, v: p.Y, w: o.Width, h: o.Height, depth: -p.X}
	}
}

// viewExtent returns the pallet's width and height in a view.
func viewExtent(pallet model.Pallet, v view) (float64, float64) {
	switch v {
	case viewTop:
		return pallet.Length, pallet.Width
	case viewFront:
		return pallet.Length, pallet.MaxHeight
	default:
		return pallet.Width, pallet.MaxHeight
	}
}

// ExportPDF generates a PDF load plan. Each pallet gets a page with top,
// front and side projections followed by its placement guide, and a final
// summary page lists statistics and any unplaced boxes. paper is "A4" or
// "Letter".
func ExportPDF(path string, plan model.LoadPlan, paper string) error {
	if plan.PalletCount() == 0 {
		return fmt.Errorf("no pallets to export")
	}

	pg := landscapePage(paper)
	pdf := fpdf.New("L", "mm", pg.name, "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, load := range plan.Loads {
		pdf.AddPage()
		renderPalletPage(pdf, pg, plan.Pallet, load, i+1)
		renderGuidePages(pdf, pg, load, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, pg, plan)

	return pdf.OutputFileAndClose(path)
}

// renderPalletPage draws the three projections of one pallet load.
func renderPalletPage(pdf *fpdf.Fpdf, pg page, pallet model.Pallet, load []model.PlacedBox, palletNum int) {
	summary := model.Summarize(model.PlacementResult{Placed: load}, pallet)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Pallet %d (%.1f x %.1f cm, max load height %.1f cm)", palletNum, pallet.Length, pallet.Width, pallet.MaxHeight)
	pdf.CellFormat(pg.width-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Boxes: %d | Weight: %.1f kg | Load height: %.1f cm | Utilization: %.1f%%",
		summary.PlacedCount, summary.PlacedWeight, summary.LoadHeight, summary.Utilization)
	pdf.CellFormat(pg.width-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pg.width - marginLeft - marginRight
	drawHeight := pg.height - drawAreaTop - marginBottom - legendHeight - captionSpace

	scaleX := (drawWidth - 2*viewGap) / (2*pallet.Length + pallet.Width)
	scaleY := drawHeight / math.Max(pallet.Width, pallet.MaxHeight)
	scale := math.Min(scaleX, scaleY)

	x := marginLeft
	y := drawAreaTop + captionSpace
	for _, v := range []view{viewTop, viewFront, viewSide} {
		w, _ := viewExtent(pallet, v)
		drawView(pdf, pallet, load, v, scale, x, y)
		x += w*scale + viewGap
	}

	_, frontH := viewExtent(pallet, viewFront)
	_, topH := viewExtent(pallet, viewTop)
	drawBoxLegend(pdf, pg, load, y+math.Max(frontH, topH)*scale+8)
}

// drawView renders one projection with its caption at (offsetX, offsetY).
// Vertical views put y=0 at the bottom of the frame.
func drawView(pdf *fpdf.Fpdf, pallet model.Pallet, load []model.PlacedBox, v view, scale, offsetX, offsetY float64) {
	extW, extH := viewExtent(pallet, v)
	canvasW := extW * scale
	canvasH := extH * scale

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetXY(offsetX, offsetY-captionSpace)
	pdf.CellFormat(canvasW, 5, v.String(), "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// Pallet deck colour for the footprint, light grey for the load space.
	if v == viewTop {
		pdf.SetFillColor(210, 180, 140)
	} else {
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	rects := make([]rect, len(load))
	for i, p := range load {
		rects[i] = projectBox(p, v)
		rects[i].step = i + 1
	}
	sort.SliceStable(rects, func(i, j int) bool { return rects[i].depth < rects[j].depth })

	for _, r := range rects {
		cr, cg, cb := load[r.step-1].Box.DisplayColor(r.step - 1)
		pw := r.w * scale
		ph := r.h * scale
		px := offsetX + r.u*scale
		py := offsetY + r.v*scale
		if v != viewTop {
			py = offsetY + canvasH - (r.v+r.h)*scale
		}

		pdf.SetFillColor(cr, cg, cb)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.2)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 5 && ph > 4 {
			label := fmt.Sprintf("%d", r.step)
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			lw := pdf.GetStringWidth(label)
			if lw < pw-1 {
				pdf.SetXY(px+(pw-lw)/2, py+ph/2-2)
				pdf.CellFormat(lw, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, extW, extH, offsetX, offsetY, canvasW, canvasH)
}

// drawDimensionAnnotations adds width and height labels outside a view frame.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, extW, extH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.1f cm", extW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.1f cm", extH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawBoxLegend renders a compact legend of step numbers and box names.
func drawBoxLegend(pdf *fpdf.Fpdf, pg page, load []model.PlacedBox, startY float64) {
	if len(load) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Boxes placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pg.width - marginRight
	maxY := pg.height - marginBottom

	for i, p := range load {
		cr, cg, cb := p.Box.DisplayColor(i)
		label := fmt.Sprintf("%d %s", i+1, p.Box.Name)
		if p.Rotated() {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		if startY+4 > maxY {
			break
		}

		pdf.SetFillColor(cr, cg, cb)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// guideColumns are the placement guide table columns and their widths in mm.
var guideColumns = []struct {
	header string
	width  float64
}{
	{"Step", 15},
	{"Box", 60},
	{"Dimensions (L x W x H)", 55},
	{"Weight", 25},
	{"Position (x, y, z)", 65},
	{"Rotated", 25},
}

// GuideRow returns the placement guide cells for one step. Dimensions are the
// rotated dimensions as loaded.
func GuideRow(step int, p model.PlacedBox) []string {
	rotated := "no"
	if p.Rotated() {
		rotated = "yes"
	}
	name := p.Box.Name
	if name == "" {
		name = p.Box.ID
	}
	o := p.Orientation
	return []string{
		fmt.Sprintf("%d", step),
		name,
		fmt.Sprintf("%.1f x %.1f x %.1f", o.Length, o.Width, o.Height),
		fmt.Sprintf("%.1f kg", p.Box.Weight),
		fmt.Sprintf("(%.1f, %.1f, %.1f)", p.X, p.Y, p.Z),
		rotated,
	}
}

// renderGuidePages writes the step-by-step loading table for one pallet,
// continuing onto new pages as needed.
func renderGuidePages(pdf *fpdf.Fpdf, pg page, load []model.PlacedBox, palletNum int) {
	if len(load) == 0 {
		return
	}

	startTable := func(title string) float64 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(marginLeft, marginTop)
		pdf.CellFormat(pg.width-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

		y := marginTop + headerHeight + 2
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for _, c := range guideColumns {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(c.width, rowHeight, c.header, "1", 0, "C", true, 0, "")
			xPos += c.width
		}
		pdf.SetFont("Helvetica", "", 9)
		return y + rowHeight
	}

	y := startTable(fmt.Sprintf("Placement Guide - Pallet %d", palletNum))
	for i, p := range load {
		if y+rowHeight > pg.height-marginBottom {
			y = startTable(fmt.Sprintf("Placement Guide - Pallet %d (continued)", palletNum))
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range GuideRow(i+1, p) {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(guideColumns[j].width, rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += guideColumns[j].width
		}
		y += rowHeight
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, pg page, plan model.LoadPlan) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pg.width-marginLeft-marginRight, 10, "Pallet Load Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pg.width-marginRight, marginTop+12)

	y := marginTop + 18

	summaries := make([]model.LoadSummary, plan.PalletCount())
	var totalWeight, totalUtil float64
	for i := range plan.Loads {
		summaries[i] = model.Summarize(model.PlacementResult{Placed: plan.Loads[i]}, plan.Pallet)
		totalWeight += summaries[i].PlacedWeight
		totalUtil += summaries[i].Utilization
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Pallet Size", fmt.Sprintf("%.1f x %.1f cm, max %.1f cm", plan.Pallet.Length, plan.Pallet.Width, plan.Pallet.MaxHeight)},
		{"Pallets Used", fmt.Sprintf("%d", plan.PalletCount())},
		{"Boxes Placed", fmt.Sprintf("%d", plan.PlacedCount())},
		{"Unplaced Boxes", fmt.Sprintf("%d", len(plan.Unplaced))},
		{"Total Weight", fmt.Sprintf("%.1f kg", totalWeight)},
		{"Average Utilization", fmt.Sprintf("%.1f%%", totalUtil/float64(plan.PalletCount()))},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Pallet Breakdown", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{20, 25, 35, 40, 35, 80}
	headers := []string{"Pallet", "Boxes", "Weight", "Load Height", "Utilization", "Centre of Gravity (x, y, z)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += rowHeight

	pdf.SetFont("Helvetica", "", 9)
	for i, s := range summaries {
		xPos = marginLeft
		cog := s.CenterOfGravity
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.PlacedCount),
			fmt.Sprintf("%.1f kg", s.PlacedWeight),
			fmt.Sprintf("%.1f cm", s.LoadHeight),
			fmt.Sprintf("%.1f%%", s.Utilization),
			fmt.Sprintf("(%.1f, %.1f, %.1f)", cog.X, cog.Y, cog.Z),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}

	if len(plan.Unplaced) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unplaced Boxes", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for i, b := range plan.Unplaced {
			if y+5 > pg.height-marginBottom-6 {
				pdf.SetXY(marginLeft+5, y)
				pdf.CellFormat(200, 5, fmt.Sprintf("... and %d more", len(plan.Unplaced)-i), "", 0, "L", false, 0, "")
				break
			}
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s (%s): %.1f x %.1f x %.1f cm, %.1f kg", b.Name, b.ID, b.Length, b.Width, b.Height, b.Weight)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pg.height-marginBottom)
	pdf.CellFormat(pg.width-marginLeft-marginRight, 4, "Generated by PalletLoad - Pallet Load Optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
